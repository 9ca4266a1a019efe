package resource

// Resource type and lifecycle state values used by the extraction pipeline.
const (
	TypeString = "string"
	StateNew   = "new"
)

// String represents one unit of translatable source text extracted from a
// file, plus the metadata downstream tooling needs to route it.
type String struct {
	// Type is the resource type, always TypeString for this extractor.
	Type string `json:"type"`
	// Project is the owning project identifier.
	Project string `json:"project"`
	// Key is the lookup key; it equals the unescaped source text.
	Key string `json:"key"`
	// SourceLocale is the locale the source text is written in.
	SourceLocale string `json:"sourceLocale"`
	// Source is the unescaped source text.
	Source string `json:"source"`
	// AutoKey is true when the key was derived from the source rather
	// than written by a developer. Always true here since key == source.
	AutoKey bool `json:"autoKey"`
	// Path is the source file the string was extracted from.
	Path string `json:"pathName"`
	// State is the lifecycle state, StateNew on extraction.
	State string `json:"state"`
	// Comment is the developer comment found on the call line, if any.
	Comment string `json:"comment,omitempty"`
	// Datatype is the file-type classification tag, copied verbatim from
	// the file-type configuration.
	Datatype string `json:"datatype"`
	// Index is the zero-based discovery order within the file.
	Index int `json:"index"`
}

// Project identifies the owning project and its source locale. It is the
// context a file plugin needs to mint resources.
type Project struct {
	ID           string
	SourceLocale string
}

// NewString builds a string resource owned by the project. Callers fill in
// the per-occurrence fields (key, source, comment, path, datatype, index).
func (p Project) NewString(key, source string) String {
	return String{
		Type:         TypeString,
		Project:      p.ID,
		Key:          key,
		SourceLocale: p.SourceLocale,
		Source:       source,
		AutoKey:      true,
		State:        StateNew,
	}
}
