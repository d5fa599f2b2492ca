// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/pkg/slug"
)

/*
TestFrom verifies accent folding and separator collapsing.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Middlemarch", "middlemarch"},
		{"accents", "Les Misérables", "les-miserables"},
		{"punctuation", "Tess of the d'Urbervilles!", "tess-of-the-d-urbervilles"},
		{"whitespace", "  Far  from   the Madding Crowd ", "far-from-the-madding-crowd"},
		{"empty", "", ""},
		{"symbols_only", "***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
