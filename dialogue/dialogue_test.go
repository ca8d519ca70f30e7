package dialogue

import (
	"bytes"
	"strings"
	"testing"

	"ImageHeaders/structs"
)

func TestShowJobSelection(t *testing.T) {
	jobs := []structs.Job{
		{Image: "a.png", Identifier: "a"},
		{Image: "b.png", Identifier: "b"},
		{Image: "c.png", Identifier: "c"},
	}
	tests := []struct {
		input   string
		want    []string
		wantErr bool
	}{
		{"\n", []string{"a", "b", "c"}, false},
		{"", []string{"a", "b", "c"}, false},
		{"3, 1\n", []string{"c", "a"}, false},
		{"2,2,,2\n", []string{"b"}, false},
		{"4\n", nil, true},
		{"one\n", nil, true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := ShowJobSelection(strings.NewReader(tt.input), &out, jobs)
		if (err != nil) != tt.wantErr {
			t.Errorf("input %q: err = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		var ids []string
		for _, j := range got {
			ids = append(ids, j.Identifier)
		}
		if strings.Join(ids, ",") != strings.Join(tt.want, ",") {
			t.Errorf("input %q: selected %v, want %v", tt.input, ids, tt.want)
		}
		if !strings.Contains(out.String(), "1. a (a.png -> a.h)") {
			t.Errorf("listing missing job a:\n%s", out.String())
		}
	}
}
