package vtt

import (
	"context"
	"testing"

	"github.com/ndhoang91/vtt-transcripts/internal/logger"
)

func newTestParser() Parser {
	return NewParser(logger.New("error"))
}

func TestParse(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		want []Cue
	}{
		{
			name: "single cue with header",
			text: "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nHello world.\n",
			want: []Cue{
				{TimeRange: "00:00:01.000 --> 00:00:02.000", Content: "Hello world.", StartMS: 1000},
			},
		},
		{
			name: "headerless file still parses",
			text: "00:00:01.000 --> 00:00:02.000\nHello world.\n",
			want: []Cue{
				{TimeRange: "00:00:01.000 --> 00:00:02.000", Content: "Hello world.", StartMS: 1000},
			},
		},
		{
			name: "metadata lines skipped",
			text: "WEBVTT\nX-TIMESTAMP-MAP=MPEGTS:0,LOCAL:00:00:00.000\nKind: captions\nLanguage: en\n\nNOTE a comment\n\n00:00:01.000 --> 00:00:02.000\nHello.\n",
			want: []Cue{
				{TimeRange: "00:00:01.000 --> 00:00:02.000", Content: "Hello.", StartMS: 1000},
			},
		},
		{
			name: "numeric content id captured",
			text: "WEBVTT\n\n17\n00:00:01.000 --> 00:00:02.000\nHello.\n",
			want: []Cue{
				{TimeRange: "00:00:01.000 --> 00:00:02.000", Content: "Hello.", ContentID: "17", StartMS: 1000},
			},
		},
		{
			name: "non-numeric leading line is not an id",
			text: "WEBVTT\n\nspeaker one\n00:00:01.000 --> 00:00:02.000\nHello.\n",
			want: []Cue{
				{TimeRange: "00:00:01.000 --> 00:00:02.000", Content: "Hello.", StartMS: 1000},
			},
		},
		{
			name: "multi-line content joined with spaces",
			text: "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nfirst line\nsecond line\n",
			want: []Cue{
				{TimeRange: "00:00:01.000 --> 00:00:02.000", Content: "first line second line", StartMS: 1000},
			},
		},
		{
			name: "block without arrow dropped",
			text: "WEBVTT\n\njust some text\nno range here\n\n00:00:01.000 --> 00:00:02.000\nHello.\n",
			want: []Cue{
				{TimeRange: "00:00:01.000 --> 00:00:02.000", Content: "Hello.", StartMS: 1000},
			},
		},
		{
			name: "trailing block without blank line",
			text: "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nfirst.\n\n00:00:03.000 --> 00:00:04.000\nsecond.",
			want: []Cue{
				{TimeRange: "00:00:01.000 --> 00:00:02.000", Content: "first.", StartMS: 1000},
				{TimeRange: "00:00:03.000 --> 00:00:04.000", Content: "second.", StartMS: 3000},
			},
		},
		{
			name: "empty content cue still emitted",
			text: "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\n",
			want: []Cue{
				{TimeRange: "00:00:01.000 --> 00:00:02.000", Content: "", StartMS: 1000},
			},
		},
		{
			name: "unparsable time range defaults to zero",
			text: "WEBVTT\n\n1:02 --> 1:03\nHello.\n",
			want: []Cue{
				{TimeRange: "1:02 --> 1:03", Content: "Hello.", StartMS: 0},
			},
		},
		{
			name: "empty file",
			text: "",
			want: nil,
		},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(ctx, "test.txt", tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Parse() returned %d cues, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("cue[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
