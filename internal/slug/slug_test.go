package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stbaker/biztime/internal/slug"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "SimpleWord", in: "Glitter", want: "glitter"},
		{name: "TwoWords", in: "Acme Corp", want: "acme-corp"},
		{name: "PunctuationRun", in: "Glitter & Gold", want: "glitter-gold"},
		{name: "LeadingTrailingJunk", in: "  --Spark-- ", want: "spark"},
		{name: "Digits", in: "Area 51 Labs", want: "area-51-labs"},
		{name: "Diacritics", in: "Compañía Única", want: "compania-unica"},
		{name: "AllPunctuation", in: "!!!", want: ""},
		{name: "Empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Make(tt.in))
		})
	}
}

func TestMakeIsDeterministic(t *testing.T) {
	assert.Equal(t, slug.Make("Glitter Inc"), slug.Make("Glitter Inc"))
}
