package format

import (
	"bytes"
	"strings"
	"testing"
)

type sampleRow struct {
	EmotionID string  `json:"emotionId"`
	Count     int     `json:"count"`
	Top       bool    `json:"top"`
	Note      *string `json:"note"`
}

type sampleTable struct{}

func (sampleTable) Headers() []string { return []string{"Type", "Count"} }
func (sampleTable) Rows() [][]string  { return [][]string{{"Joy", "2"}, {"Sadness", "1"}} }

func TestWrite_JSONEnvelope(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, []int{1, 2}, "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := buf.String(), "{\"data\":[1,2]}\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWrite_EDN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		pretty bool
		want   string
	}{
		{
			name: "compact",
			want: `{:data [{:count 2 :emotion-id "emo-1" :note nil :top true}]}` + "\n",
		},
		{
			name:   "pretty",
			pretty: true,
			want: strings.Join([]string{
				`{`,
				`  :data [`,
				`    {`,
				`      :count 2`,
				`      :emotion-id "emo-1"`,
				`      :note nil`,
				`      :top true`,
				`    }`,
				`  ]`,
				`}`,
			}, "\n") + "\n",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := Write(&buf, []sampleRow{{EmotionID: "emo-1", Count: 2, Top: true}}, "edn", tt.pretty)
			if err != nil {
				t.Fatalf("Write: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("edn mismatch:\n got: %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestWrite_TextTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, sampleTable{}, "text", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Type", "Count", "Joy", "Sadness"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "data") {
		t.Fatalf("text output must not be wrapped in an envelope:\n%s", out)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	if err := Write(&bytes.Buffer{}, nil, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
