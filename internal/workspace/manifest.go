package workspace

import "encoding/json"

// RootManifest is the subset of the workspace-root package manifest the
// generator reads: the default author identity and the pinned tool versions
// that are copied into new packages.
type RootManifest struct {
	Name            string            `json:"name"`
	Author          Author            `json:"author"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Author is a package author field. Manifests write it either as a plain
// string or as an object with a "name" key; both decode to the name.
type Author struct {
	Name string
}

// UnmarshalJSON accepts both the string and object author forms.
func (a *Author) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Name = s
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.Name = obj.Name
	return nil
}

// MarshalJSON writes the string form.
func (a Author) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Name)
}
