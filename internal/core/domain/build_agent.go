package domain

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// BuildAgentElement is the element name a BuildAgent is encoded under in XML.
const BuildAgentElement = "buildagent"

// BuildAgent identifies the tool that executed a build (e.g. Maven, Gradle, bob).
// The zero value has an empty name and version.
//
// A BuildAgent carries no synchronization. Treat it as immutable once it has
// been shared.
type BuildAgent struct {
	name    string
	version string
}

// buildAgentRecord is the serialized shape of a BuildAgent.
type buildAgentRecord struct {
	Name    string `json:"name" yaml:"name" xml:"name"`
	Version string `json:"version" yaml:"version" xml:"version"`
}

// NewBuildAgent creates a BuildAgent from a name and a version.
// Neither value is validated.
func NewBuildAgent(name, version string) BuildAgent {
	return BuildAgent{name: name, version: version}
}

// ParseBuildAgent builds a BuildAgent from a combined NAME/VERSION token.
//
// The token is split on its first slash. When there is no slash, or the slash
// is the last character, the whole token becomes the name and the version is
// empty. Every string is accepted, including "".
func ParseBuildAgent(agent string) BuildAgent {
	slash := strings.IndexByte(agent, '/')
	if slash != -1 && slash < len(agent)-1 {
		return BuildAgent{name: agent[:slash], version: agent[slash+1:]}
	}
	return BuildAgent{name: agent}
}

// Name returns the agent name.
func (a BuildAgent) Name() string {
	return a.name
}

// SetName sets the agent name.
func (a *BuildAgent) SetName(name string) {
	a.name = name
}

// Version returns the agent version.
func (a BuildAgent) Version() string {
	return a.version
}

// SetVersion sets the agent version.
func (a *BuildAgent) SetVersion(version string) {
	a.version = version
}

// IsZero reports whether both the name and the version are empty.
func (a BuildAgent) IsZero() bool {
	return a.name == "" && a.version == ""
}

// String returns the display form NAME/VERSION. Fields are concatenated
// verbatim, so an empty agent renders as "/".
func (a BuildAgent) String() string {
	return a.name + "/" + a.version
}

func (a BuildAgent) record() buildAgentRecord {
	return buildAgentRecord{Name: a.name, Version: a.version}
}

func (a *BuildAgent) set(rec buildAgentRecord) {
	a.name = rec.Name
	a.version = rec.Version
}

// MarshalJSON implements json.Marshaler.
// Both name and version are always present.
func (a BuildAgent) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.record())
}

// UnmarshalJSON implements json.Unmarshaler.
// It accepts an object with name and version, or a combined token string.
func (a *BuildAgent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var token string
		if err := json.Unmarshal(data, &token); err != nil {
			return zerr.Wrap(err, ErrInvalidBuildAgent.Error())
		}
		*a = ParseBuildAgent(token)
		return nil
	}

	var rec buildAgentRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return zerr.Wrap(err, ErrInvalidBuildAgent.Error())
	}
	a.set(rec)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a BuildAgent) MarshalYAML() (any, error) {
	return a.record(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// A scalar node is parsed as a combined token, a mapping node is read field by field.
// Null nodes never reach it: yaml.v3 zeroes the target itself.
func (a *BuildAgent) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*a = ParseBuildAgent(value.Value)
		return nil
	case yaml.MappingNode:
		var rec buildAgentRecord
		if err := value.Decode(&rec); err != nil {
			return zerr.Wrap(err, ErrInvalidBuildAgent.Error())
		}
		a.set(rec)
		return nil
	default:
		return zerr.With(ErrInvalidBuildAgent, "line", value.Line)
	}
}

// MarshalXML implements xml.Marshaler.
// The agent is always written as a <buildagent> element.
func (a BuildAgent) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: BuildAgentElement}
	return e.EncodeElement(a.record(), start)
}

// UnmarshalXML implements xml.Unmarshaler.
func (a *BuildAgent) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var rec buildAgentRecord
	if err := d.DecodeElement(&rec, &start); err != nil {
		return zerr.Wrap(err, ErrInvalidBuildAgent.Error())
	}
	a.set(rec)
	return nil
}
