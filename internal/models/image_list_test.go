package models

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

type imageDoc struct {
	ImageURL ImageList `bson:"image_url"`
}

func TestImageListDecodesArrayDocument(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"image_url": []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc imageDoc
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(doc.ImageURL) != 2 || doc.ImageURL.First() != "https://cdn.example.com/a.jpg" {
		t.Fatalf("unexpected list: %v", doc.ImageURL)
	}
}

func TestImageListDecodesLegacySingleString(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"image_url": "https://cdn.example.com/a.jpg"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc imageDoc
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(doc.ImageURL) != 1 || doc.ImageURL[0] != "https://cdn.example.com/a.jpg" {
		t.Fatalf("unexpected list: %v", doc.ImageURL)
	}
}

func TestImageListDecodesLegacyJSONArrayString(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"image_url": `["https://cdn.example.com/a.jpg","https://cdn.example.com/b.jpg"]`})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc imageDoc
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(doc.ImageURL) != 2 || doc.ImageURL[1] != "https://cdn.example.com/b.jpg" {
		t.Fatalf("unexpected list: %v", doc.ImageURL)
	}
}

func TestImageListMarshalsBackAsArray(t *testing.T) {
	raw, err := bson.Marshal(imageDoc{ImageURL: ImageList{"https://cdn.example.com/a.jpg"}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var generic bson.M
	if err := bson.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := generic["image_url"].(bson.A); !ok {
		t.Fatalf("expected array, got %T", generic["image_url"])
	}
}

func TestImageListJSONAcceptsStringAndArray(t *testing.T) {
	var fromString ImageList
	if err := json.Unmarshal([]byte(`"https://cdn.example.com/a.jpg"`), &fromString); err != nil {
		t.Fatalf("string form failed: %v", err)
	}
	if len(fromString) != 1 {
		t.Fatalf("unexpected list: %v", fromString)
	}

	var fromArray ImageList
	if err := json.Unmarshal([]byte(`["https://cdn.example.com/a.jpg"]`), &fromArray); err != nil {
		t.Fatalf("array form failed: %v", err)
	}
	if len(fromArray) != 1 {
		t.Fatalf("unexpected list: %v", fromArray)
	}
}

func TestImageListFirstOnEmptyList(t *testing.T) {
	if got := (ImageList{}).First(); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestImageListJSONNeverEmitsNull(t *testing.T) {
	body, err := json.Marshal(struct {
		ImageURL ImageList `json:"image_url"`
	}{})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(body) != `{"image_url":[]}` {
		t.Fatalf("expected empty array, got %s", body)
	}
}
