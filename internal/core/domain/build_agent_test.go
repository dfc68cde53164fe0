package domain_test

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildinfo/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func TestParseBuildAgent(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		wantName    string
		wantVersion string
		wantString  string
	}{
		{
			name:        "name and version",
			token:       "toolX/1.2.3",
			wantName:    "toolX",
			wantVersion: "1.2.3",
			wantString:  "toolX/1.2.3",
		},
		{
			name:        "empty token",
			token:       "",
			wantName:    "",
			wantVersion: "",
			wantString:  "/",
		},
		{
			name:        "name only",
			token:       "onlyname",
			wantName:    "onlyname",
			wantVersion: "",
			wantString:  "onlyname/",
		},
		{
			name:        "trailing slash keeps whole token as name",
			token:       "maven/",
			wantName:    "maven/",
			wantVersion: "",
			wantString:  "maven//",
		},
		{
			name:        "single slash",
			token:       "/",
			wantName:    "/",
			wantVersion: "",
			wantString:  "//",
		},
		{
			name:        "leading slash",
			token:       "/1.0",
			wantName:    "",
			wantVersion: "1.0",
			wantString:  "/1.0",
		},
		{
			name:        "splits on first slash only",
			token:       "gradle/8.5/rc-1",
			wantName:    "gradle",
			wantVersion: "8.5/rc-1",
			wantString:  "gradle/8.5/rc-1",
		},
		{
			name:        "whitespace is kept verbatim",
			token:       " ant / 1.10 ",
			wantName:    " ant ",
			wantVersion: " 1.10 ",
			wantString:  " ant / 1.10 ",
		},
		{
			name:        "multibyte name",
			token:       "bäckerei/2",
			wantName:    "bäckerei",
			wantVersion: "2",
			wantString:  "bäckerei/2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := domain.ParseBuildAgent(tt.token)
			assert.Equal(t, tt.wantName, agent.Name())
			assert.Equal(t, tt.wantVersion, agent.Version())
			assert.Equal(t, tt.wantString, agent.String())
		})
	}
}

func TestParseBuildAgent_Properties(t *testing.T) {
	t.Run("tokens without a slash become the name", func(t *testing.T) {
		for _, s := range []string{"", "a", "maven", "ivy 2.5", "1.0.0"} {
			agent := domain.ParseBuildAgent(s)
			assert.Equal(t, s, agent.Name(), "token %q", s)
			assert.Empty(t, agent.Version(), "token %q", s)
		}
	})

	t.Run("tokens whose only slash is the last character become the name", func(t *testing.T) {
		for _, s := range []string{"/", "a/", "maven/", "ant 1.10/"} {
			agent := domain.ParseBuildAgent(s)
			assert.Equal(t, s, agent.Name(), "token %q", s)
			assert.Empty(t, agent.Version(), "token %q", s)
		}
	})

	t.Run("name and non-empty version are split", func(t *testing.T) {
		pairs := [][2]string{
			{"a", "b"},
			{"", "b"},
			{"bob", "0.1.0"},
			{"bazel", "7.0/linux"},
		}
		for _, p := range pairs {
			agent := domain.ParseBuildAgent(p[0] + "/" + p[1])
			assert.Equal(t, p[0], agent.Name())
			assert.Equal(t, p[1], agent.Version())
		}
	})
}

func TestNewBuildAgent(t *testing.T) {
	tests := []struct {
		name    string
		agent   string
		version string
		want    string
	}{
		{name: "both set", agent: "maven", version: "3.9.6", want: "maven/3.9.6"},
		{name: "empty version", agent: "tool", version: "", want: "tool/"},
		{name: "empty name", agent: "", version: "1.0", want: "/1.0"},
		{name: "both empty", agent: "", version: "", want: "/"},
		{name: "no validation", agent: "a/b", version: "c/d", want: "a/b/c/d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := domain.NewBuildAgent(tt.agent, tt.version)
			assert.Equal(t, tt.agent, agent.Name())
			assert.Equal(t, tt.version, agent.Version())
			assert.Equal(t, tt.want, agent.String())
		})
	}
}

func TestBuildAgent_ZeroValue(t *testing.T) {
	var agent domain.BuildAgent

	assert.Empty(t, agent.Name())
	assert.Empty(t, agent.Version())
	assert.True(t, agent.IsZero())
	assert.Equal(t, "/", agent.String())
}

func TestBuildAgent_Setters(t *testing.T) {
	agent := domain.ParseBuildAgent("gradle/8.4")

	agent.SetVersion("8.5")
	assert.Equal(t, "gradle/8.5", agent.String())

	agent.SetName("maven")
	assert.Equal(t, "maven/8.5", agent.String())

	agent.SetVersion("")
	assert.Equal(t, "maven/", agent.String())
	assert.False(t, agent.IsZero())

	agent.SetName("")
	assert.True(t, agent.IsZero())

	var empty domain.BuildAgent
	empty.SetName("ant")
	assert.Equal(t, "ant/", empty.String())
}

func TestBuildAgent_JSON(t *testing.T) {
	t.Run("marshal always carries name and version", func(t *testing.T) {
		data, err := json.Marshal(domain.NewBuildAgent("toolX", "1.2.3"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"toolX","version":"1.2.3"}`, string(data))

		data, err = json.Marshal(domain.BuildAgent{})
		require.NoError(t, err)
		assert.Equal(t, `{"name":"","version":""}`, string(data))
	})

	t.Run("unmarshal object", func(t *testing.T) {
		var agent domain.BuildAgent
		require.NoError(t, json.Unmarshal([]byte(`{"name":"bazel","version":"7.1.0"}`), &agent))
		assert.Equal(t, domain.NewBuildAgent("bazel", "7.1.0"), agent)
	})

	t.Run("unmarshal combined token", func(t *testing.T) {
		var agent domain.BuildAgent
		require.NoError(t, json.Unmarshal([]byte(`"gradle/8.5"`), &agent))
		assert.Equal(t, domain.NewBuildAgent("gradle", "8.5"), agent)
	})

	t.Run("null leaves the agent untouched", func(t *testing.T) {
		agent := domain.NewBuildAgent("ant", "1.10")
		require.NoError(t, json.Unmarshal([]byte(`null`), &agent))
		assert.Equal(t, "ant/1.10", agent.String())
	})

	t.Run("unmarshal invalid shape", func(t *testing.T) {
		var agent domain.BuildAgent
		err := json.Unmarshal([]byte(`[1,2]`), &agent)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid build agent")
	})

	t.Run("round trip in struct", func(t *testing.T) {
		type wrapper struct {
			Agent domain.BuildAgent `json:"agent"`
		}
		original := wrapper{Agent: domain.NewBuildAgent("bob", "0.4.0")}

		data, err := json.Marshal(original)
		require.NoError(t, err)
		assert.Equal(t, `{"agent":{"name":"bob","version":"0.4.0"}}`, string(data))

		var decoded wrapper
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)
	})
}

func TestBuildAgent_YAML(t *testing.T) {
	t.Run("marshal always carries name and version", func(t *testing.T) {
		data, err := yaml.Marshal(domain.NewBuildAgent("toolX", "1.2.3"))
		require.NoError(t, err)
		assert.Equal(t, "name: toolX\nversion: 1.2.3\n", string(data))

		data, err = yaml.Marshal(domain.BuildAgent{})
		require.NoError(t, err)
		assert.Equal(t, "name: \"\"\nversion: \"\"\n", string(data))
	})

	type wrapper struct {
		Agent domain.BuildAgent `yaml:"agent"`
	}

	tests := []struct {
		name    string
		input   string
		want    domain.BuildAgent
		wantErr string
	}{
		{
			name:  "scalar token",
			input: "agent: gradle/8.5\n",
			want:  domain.NewBuildAgent("gradle", "8.5"),
		},
		{
			name:  "scalar without version",
			input: "agent: make\n",
			want:  domain.NewBuildAgent("make", ""),
		},
		{
			name:  "mapping",
			input: "agent:\n  name: maven\n  version: \"3.9\"\n",
			want:  domain.NewBuildAgent("maven", "3.9"),
		},
		{
			name:  "mapping with missing version",
			input: "agent:\n  name: ant\n",
			want:  domain.NewBuildAgent("ant", ""),
		},
		{
			name:  "null yields the zero agent",
			input: "agent: null\n",
			want:  domain.BuildAgent{},
		},
		{
			name:  "tilde yields the zero agent",
			input: "agent: ~\n",
			want:  domain.BuildAgent{},
		},
		{
			name:  "empty string yields the zero agent",
			input: "agent: \"\"\n",
			want:  domain.BuildAgent{},
		},
		{
			name:    "sequence is rejected",
			input:   "agent: [a, b]\n",
			wantErr: "invalid build agent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w wrapper
			err := yaml.Unmarshal([]byte(tt.input), &w)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.Agent)
		})
	}
}

func TestBuildAgent_XML(t *testing.T) {
	t.Run("marshal uses the buildagent element", func(t *testing.T) {
		data, err := xml.Marshal(domain.NewBuildAgent("toolX", "1.2.3"))
		require.NoError(t, err)
		assert.Equal(t, "<buildagent><name>toolX</name><version>1.2.3</version></buildagent>", string(data))
	})

	t.Run("marshal empty agent keeps both fields", func(t *testing.T) {
		data, err := xml.Marshal(domain.BuildAgent{})
		require.NoError(t, err)
		assert.Equal(t, "<buildagent><name></name><version></version></buildagent>", string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var agent domain.BuildAgent
		err := xml.Unmarshal([]byte("<buildagent><name>ivy</name><version>2.5.2</version></buildagent>"), &agent)
		require.NoError(t, err)
		assert.Equal(t, domain.NewBuildAgent("ivy", "2.5.2"), agent)
	})
}
