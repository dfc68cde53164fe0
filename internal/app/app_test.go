package app_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildinfo/internal/adapters/format"
	"go.trai.ch/buildinfo/internal/app"
	"go.trai.ch/buildinfo/internal/build"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	loader *mocks.MockConfigLoader
	store  *mocks.MockBuildInfoStore
	hasher *mocks.MockHasher
	logger *mocks.MockLogger
	app    *app.App
}

func newTestApp(t *testing.T) testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := testDeps{
		loader: mocks.NewMockConfigLoader(ctrl),
		store:  mocks.NewMockBuildInfoStore(ctrl),
		hasher: mocks.NewMockHasher(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	d.app = app.New(d.loader, d.store, d.hasher, d.logger, format.NewProvider()).
		WithClock(func() time.Time { return fixedTime })
	return d
}

func TestApp_Record_AgentPrecedence(t *testing.T) {
	defaultStore := filepath.Join("/proj", domain.DefaultStorePath())

	tests := []struct {
		name      string
		token     string
		cfgAgent  domain.BuildAgent
		wantAgent string
	}{
		{
			name:      "explicit token wins",
			token:     "gradle/8.5",
			cfgAgent:  domain.NewBuildAgent("maven", "3.9"),
			wantAgent: "gradle/8.5",
		},
		{
			name:      "explicit token without version",
			token:     "make",
			wantAgent: "make/",
		},
		{
			name:      "configured agent",
			cfgAgent:  domain.NewBuildAgent("maven", "3.9"),
			wantAgent: "maven/3.9",
		},
		{
			name:      "falls back to own identity",
			wantAgent: build.Agent().String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestApp(t)

			cfg := domain.DefaultConfig()
			cfg.Agent = tt.cfgAgent
			d.loader.EXPECT().Load("/proj").Return(cfg, nil)
			d.store.EXPECT().Put(defaultStore, gomock.Any()).DoAndReturn(func(_ string, info domain.BuildInfo) error {
				assert.Equal(t, tt.wantAgent, info.Agent.String())
				return nil
			})
			d.logger.EXPECT().Info("recorded build info", "task", "build", "agent", tt.wantAgent)

			info, err := d.app.Record(context.Background(), "/proj", app.RecordOptions{
				Task:  "build",
				Agent: tt.token,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAgent, info.Agent.String())
		})
	}
}

func TestApp_Record_Fields(t *testing.T) {
	d := newTestApp(t)

	cfg := domain.Config{StoreDir: "records"}
	d.loader.EXPECT().Load("/proj").Return(cfg, nil)
	d.store.EXPECT().Put(filepath.Join("/proj", "records"), domain.BuildInfo{
		TaskName:   "build",
		Agent:      domain.NewBuildAgent("bob", "0.4.0"),
		InputHash:  "in",
		OutputHash: "out",
		Timestamp:  fixedTime,
	}).Return(nil)
	d.logger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	info, err := d.app.Record(context.Background(), "/proj", app.RecordOptions{
		Task:       "build",
		Agent:      "bob/0.4.0",
		InputHash:  "in",
		OutputHash: "out",
	})
	require.NoError(t, err)
	assert.Equal(t, fixedTime, info.Timestamp)
}

func TestApp_Record_HashesPaths(t *testing.T) {
	d := newTestApp(t)

	d.loader.EXPECT().Load("/proj").Return(domain.DefaultConfig(), nil)
	d.hasher.EXPECT().HashPaths("/proj", []string{"src", "go.mod"}).Return("00000000000000aa", nil)
	d.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	d.logger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	info, err := d.app.Record(context.Background(), "/proj", app.RecordOptions{
		Task:       "build",
		Inputs:     []string{"src", "go.mod"},
		OutputHash: "explicit",
		Outputs:    []string{"bin"},
	})
	require.NoError(t, err)
	assert.Equal(t, "00000000000000aa", info.InputHash)
	assert.Equal(t, "explicit", info.OutputHash)
}

func TestApp_Record_HashFailure(t *testing.T) {
	d := newTestApp(t)

	d.loader.EXPECT().Load("/proj").Return(domain.DefaultConfig(), nil)
	d.hasher.EXPECT().HashPaths("/proj", []string{"dist"}).Return("", domain.ErrInputNotFound)

	_, err := d.app.Record(context.Background(), "/proj", app.RecordOptions{
		Task:    "build",
		Outputs: []string{"dist"},
	})
	require.ErrorIs(t, err, domain.ErrInputNotFound)
}

func TestApp_Record_MissingTask(t *testing.T) {
	d := newTestApp(t)

	_, err := d.app.Record(context.Background(), "/proj", app.RecordOptions{Agent: "bob/1"})
	require.ErrorIs(t, err, domain.ErrMissingTaskName)
}

func TestApp_Record_StoreFailure(t *testing.T) {
	d := newTestApp(t)

	d.loader.EXPECT().Load("/proj").Return(domain.DefaultConfig(), nil)
	d.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := d.app.Record(context.Background(), "/proj", app.RecordOptions{Task: "build"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildInfoUpdateFailed))
	assert.Contains(t, err.Error(), "disk full")
}

func TestApp_Record_ConfigFailure(t *testing.T) {
	d := newTestApp(t)

	d.loader.EXPECT().Load("/proj").Return(domain.Config{}, errors.New("bad yaml"))

	_, err := d.app.Record(context.Background(), "/proj", app.RecordOptions{Task: "build"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigLoadFailed.Error())
}

func TestApp_Record_Canceled(t *testing.T) {
	d := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.app.Record(ctx, "/proj", app.RecordOptions{Task: "build"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestApp_Show(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		d := newTestApp(t)
		stored := &domain.BuildInfo{TaskName: "build", Agent: domain.ParseBuildAgent("ant/1.10")}

		d.loader.EXPECT().Load("/proj").Return(domain.DefaultConfig(), nil)
		d.store.EXPECT().Get(filepath.Join("/proj", domain.DefaultStorePath()), "build").Return(stored, nil)

		info, err := d.app.Show(context.Background(), "/proj", "build")
		require.NoError(t, err)
		assert.Equal(t, *stored, info)
	})

	t.Run("not found", func(t *testing.T) {
		d := newTestApp(t)

		d.loader.EXPECT().Load("/proj").Return(domain.DefaultConfig(), nil)
		d.store.EXPECT().Get(gomock.Any(), "missing").Return(nil, nil)

		_, err := d.app.Show(context.Background(), "/proj", "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrBuildInfoNotFound))
	})

	t.Run("store error", func(t *testing.T) {
		d := newTestApp(t)

		d.loader.EXPECT().Load("/proj").Return(domain.DefaultConfig(), nil)
		d.store.EXPECT().Get(gomock.Any(), "build").Return(nil, errors.New("io error"))

		_, err := d.app.Show(context.Background(), "/proj", "build")
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrBuildInfoLookupFailed.Error())
	})

	t.Run("missing task", func(t *testing.T) {
		d := newTestApp(t)

		_, err := d.app.Show(context.Background(), "/proj", "")
		require.ErrorIs(t, err, domain.ErrMissingTaskName)
	})
}

func TestApp_List(t *testing.T) {
	t.Run("returns records", func(t *testing.T) {
		d := newTestApp(t)
		records := []domain.BuildInfo{{TaskName: "a"}, {TaskName: "b"}}

		d.loader.EXPECT().Load("/proj").Return(domain.DefaultConfig(), nil)
		d.store.EXPECT().List(gomock.Any(), filepath.Join("/proj", domain.DefaultStorePath())).Return(records, nil)

		infos, err := d.app.List(context.Background(), "/proj")
		require.NoError(t, err)
		assert.Equal(t, records, infos)
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		d := newTestApp(t)

		d.loader.EXPECT().Load("/proj").Return(domain.DefaultConfig(), nil)
		d.store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		infos, err := d.app.List(context.Background(), "/proj")
		require.NoError(t, err)
		assert.NotNil(t, infos)
		assert.Empty(t, infos)
	})
}

func TestApp_ParseAgentAndSelf(t *testing.T) {
	d := newTestApp(t)

	agent := d.app.ParseAgent("toolX/1.2.3")
	assert.Equal(t, "toolX", agent.Name())
	assert.Equal(t, "1.2.3", agent.Version())

	assert.Equal(t, build.Name, d.app.Self().Name())
}

func TestApp_Render(t *testing.T) {
	t.Run("known format", func(t *testing.T) {
		d := newTestApp(t)

		var buf bytes.Buffer
		require.NoError(t, d.app.Render(&buf, format.Text, domain.ParseBuildAgent("toolX/1.2.3")))
		assert.Equal(t, "toolX/1.2.3\n", buf.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		d := newTestApp(t)

		err := d.app.Render(&bytes.Buffer{}, "toml", domain.BuildAgent{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnknownFormat))
	})

	t.Run("encoder from provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mocks.NewMockEncoderProvider(ctrl)
		encoder := mocks.NewMockEncoder(ctrl)
		a := app.New(nil, nil, nil, nil, provider)

		var buf bytes.Buffer
		agent := domain.ParseBuildAgent("bob/1")
		provider.EXPECT().Encoder("custom").Return(encoder, nil)
		encoder.EXPECT().Encode(&buf, agent).Return(nil)

		require.NoError(t, a.Render(&buf, "custom", agent))
	})
}
