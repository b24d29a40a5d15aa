package render

import (
	"strings"
	"testing"
)

func TestParseBorder(t *testing.T) {
	type tc struct {
		name   string
		want   BorderStyle
		wantOK bool
	}

	tests := map[string]tc{
		"empty is single": {name: "", want: BorderSingle, wantOK: true},
		"none":            {name: "none", want: BorderNone, wantOK: true},
		"double":          {name: "double", want: BorderDouble, wantOK: true},
		"rounded":         {name: "rounded", want: BorderRounded, wantOK: true},
		"ascii":           {name: "ascii", want: BorderASCII, wantOK: true},
		"unknown":         {name: "dotted", want: BorderNone, wantOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseBorder(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseBorder(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDrawBox(t *testing.T) {
	type tc struct {
		rect   Rect
		border BorderStyle
		clip   Rect
		want   []string
	}

	tests := map[string]tc{
		"single": {
			rect:   NewRect(0, 0, 4, 3),
			border: BorderSingle,
			clip:   NewRect(0, 0, 6, 4),
			want:   []string{"┌──┐", "│  │", "└──┘", ""},
		},
		"rounded offset": {
			rect:   NewRect(1, 1, 3, 3),
			border: BorderRounded,
			clip:   NewRect(0, 0, 6, 4),
			want:   []string{"", " ╭─╮", " │ │", " ╰─╯"},
		},
		"single row is a line": {
			rect:   NewRect(0, 0, 3, 1),
			border: BorderASCII,
			clip:   NewRect(0, 0, 6, 4),
			want:   []string{"---", "", "", ""},
		},
		"clipped keeps visible edges": {
			rect:   NewRect(0, 0, 6, 3),
			border: BorderASCII,
			clip:   NewRect(0, 0, 3, 2),
			want:   []string{"+--", "|", "", ""},
		},
		"none draws nothing": {
			rect:   NewRect(0, 0, 4, 3),
			border: BorderNone,
			clip:   NewRect(0, 0, 6, 4),
			want:   []string{"", "", "", ""},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCanvas(6, 4)
			DrawBox(c, tt.rect, tt.border, tt.clip)
			if got := c.String(); got != strings.Join(tt.want, "\n") {
				t.Errorf("DrawBox() =\n%s\nwant\n%s", got, strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestDrawBoxWithTitle(t *testing.T) {
	type tc struct {
		width int
		title string
		want  string
	}

	tests := map[string]tc{
		"fits":      {width: 8, title: "hello", want: "┌hello─┐"},
		"truncated": {width: 6, title: "toolbar", want: "┌tool┐"},
		"no room":   {width: 2, title: "x", want: "┌┐"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCanvas(tt.width, 3)
			DrawBoxWithTitle(c, NewRect(0, 0, tt.width, 3), BorderSingle, tt.title, c.Rect())
			if got := c.Lines()[0]; got != tt.want {
				t.Errorf("top border = %q, want %q", got, tt.want)
			}
		})
	}
}
