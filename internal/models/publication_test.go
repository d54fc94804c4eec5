package models

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

func TestCoordinateColumnsHaveNoFixedScale(t *testing.T) {
	s, err := schema.Parse(&Publication{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}

	for _, name := range []string{"Latitude", "Longitude"} {
		f := s.LookUpField(name)
		if f == nil {
			t.Fatalf("field %s not found", name)
		}
		if f.Precision != 0 || f.Scale != 0 {
			t.Fatalf("%s has precision %d scale %d, want unbounded", name, f.Precision, f.Scale)
		}
		if f.DataType != schema.Float {
			t.Fatalf("%s data type = %q, want float", name, f.DataType)
		}
	}
}

func TestImageURLsKeepsOrder(t *testing.T) {
	p := Publication{Images: []PublicationImage{{URL: "b"}, {URL: "a"}}}
	urls := p.ImageURLs()
	if len(urls) != 2 || urls[0] != "b" || urls[1] != "a" {
		t.Fatalf("urls = %v, want [b a]", urls)
	}
}
