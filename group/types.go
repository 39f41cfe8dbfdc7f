package group

import "encoding/json"

// GroupId is needed for JSON marshalling groups.
type GroupId struct {
	Name string `json:"group"`
}

// marshalElementJSON and unmarshalElementJSON give every Element backend a
// uniform JSON encoding: the element's own binary marshaler output, wrapped
// in a JSON string (encoding/json base64-encodes []byte automatically).
// This replaces the teacher's per-curve X/Y-splitting marshal code, which
// assumed an uncompressed affine (x, y) encoding that several backends here
// (ristretto255, the mod-p group) do not use.
func marshalElementJSON(e Element) ([]byte, error) {
	b, err := e.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(b)
}

func unmarshalElementJSON(data []byte, e Element) error {
	var b []byte
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	return e.UnmarshalBinary(b)
}
