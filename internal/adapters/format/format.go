// Package format renders build agents and build records as text, JSON, YAML or XML.
package format

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Supported format names.
const (
	Text = "text"
	JSON = "json"
	YAML = "yaml"
	XML  = "xml"
)

// Names lists the supported formats in display order.
var Names = []string{Text, JSON, YAML, XML}

// Provider implements ports.EncoderProvider.
type Provider struct{}

// NewProvider creates a new Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Encoder returns the encoder registered under name.
func (p *Provider) Encoder(name string) (ports.Encoder, error) {
	switch name {
	case Text:
		return textEncoder{}, nil
	case JSON:
		return jsonEncoder{}, nil
	case YAML:
		return yamlEncoder{}, nil
	case XML:
		return xmlEncoder{}, nil
	default:
		return nil, zerr.With(domain.ErrUnknownFormat, "format", name)
	}
}

func unsupported(v any) error {
	return zerr.With(domain.ErrUnsupportedValue, "type", fmt.Sprintf("%T", v))
}

type textEncoder struct{}

func (textEncoder) Encode(w io.Writer, v any) error {
	switch val := v.(type) {
	case domain.BuildAgent:
		_, err := fmt.Fprintln(w, val.String())
		return err
	case domain.BuildInfo:
		return writeInfoText(w, val)
	case []domain.BuildInfo:
		for i, info := range val {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if err := writeInfoText(w, info); err != nil {
				return err
			}
		}
		return nil
	default:
		return unsupported(v)
	}
}

func writeInfoText(w io.Writer, info domain.BuildInfo) error {
	lines := [][2]string{
		{"task", info.TaskName},
		{"agent", info.Agent.String()},
	}
	if info.InputHash != "" {
		lines = append(lines, [2]string{"input", info.InputHash})
	}
	if info.OutputHash != "" {
		lines = append(lines, [2]string{"output", info.OutputHash})
	}
	if !info.Timestamp.IsZero() {
		lines = append(lines, [2]string{"time", info.Timestamp.Format(time.RFC3339)})
	}

	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-7s %s\n", line[0]+":", line[1]); err != nil {
			return err
		}
	}
	return nil
}

type jsonEncoder struct{}

func (jsonEncoder) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, domain.ErrEncodeFailed.Error())
	}
	return nil
}

type yamlEncoder struct{}

func (yamlEncoder) Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, domain.ErrEncodeFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrEncodeFailed.Error())
	}
	return nil
}

// xmlBuildInfo is the XML shape of a domain.BuildInfo.
type xmlBuildInfo struct {
	XMLName    xml.Name          `xml:"buildinfo"`
	TaskName   string            `xml:"task_name"`
	Agent      domain.BuildAgent `xml:"buildagent"`
	InputHash  string            `xml:"input_hash,omitempty"`
	OutputHash string            `xml:"output_hash,omitempty"`
	Timestamp  string            `xml:"timestamp,omitempty"`
}

type xmlBuildInfoList struct {
	XMLName xml.Name       `xml:"builds"`
	Builds  []xmlBuildInfo `xml:"buildinfo"`
}

func toXML(info domain.BuildInfo) xmlBuildInfo {
	out := xmlBuildInfo{
		TaskName:   info.TaskName,
		Agent:      info.Agent,
		InputHash:  info.InputHash,
		OutputHash: info.OutputHash,
	}
	if !info.Timestamp.IsZero() {
		out.Timestamp = info.Timestamp.Format(time.RFC3339)
	}
	return out
}

type xmlEncoder struct{}

func (xmlEncoder) Encode(w io.Writer, v any) error {
	var doc any
	switch val := v.(type) {
	case domain.BuildAgent:
		doc = val
	case domain.BuildInfo:
		doc = toXML(val)
	case []domain.BuildInfo:
		list := xmlBuildInfoList{Builds: make([]xmlBuildInfo, 0, len(val))}
		for _, info := range val {
			list.Builds = append(list.Builds, toXML(info))
		}
		doc = list
	default:
		return unsupported(v)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return zerr.Wrap(err, domain.ErrEncodeFailed.Error())
	}
	_, err := io.WriteString(w, "\n")
	return err
}
