package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ImageList is an ordered list of media URLs. Older product documents stored
// the field as a single URL string, or as a JSON array serialized into a
// string; ImageList decodes all three shapes and always writes back an array.
type ImageList []string

// fromLegacyString resolves the two single-string forms: a JSON-encoded array
// embedded in the string, or a bare URL.
func fromLegacyString(value string) ImageList {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ImageList{}
	}

	if strings.HasPrefix(trimmed, "[") {
		var urls []string
		if err := json.Unmarshal([]byte(trimmed), &urls); err == nil {
			return ImageList(urls)
		}
	}

	return ImageList{trimmed}
}

// UnmarshalBSONValue accepts string and array BSON types so legacy documents
// decode without failing the entire request.
func (l *ImageList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null:
		*l = nil
		return nil
	case bsontype.Array:
		var urls []string
		if err := bson.UnmarshalValue(t, data, &urls); err != nil {
			return err
		}
		*l = urls
		return nil
	case bsontype.String:
		var value string
		if err := bson.UnmarshalValue(t, data, &value); err != nil {
			return err
		}
		*l = fromLegacyString(value)
		return nil
	default:
		return fmt.Errorf("cannot decode %s into ImageList", t)
	}
}

// MarshalBSONValue always stores the list as an array, keeping new writes
// consistent even when the document being updated used a legacy string.
func (l ImageList) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue([]string(l))
}

// UnmarshalJSON mirrors the BSON tolerance for request bodies that still send
// the single-string form.
func (l *ImageList) UnmarshalJSON(data []byte) error {
	var urls []string
	if err := json.Unmarshal(data, &urls); err == nil {
		*l = urls
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("image_url must be a string or an array of strings")
	}
	*l = fromLegacyString(value)
	return nil
}

// MarshalJSON emits an array, never null, so clients can index it blindly.
func (l ImageList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// First returns the main image, or the empty string when no media is set.
func (l ImageList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}
