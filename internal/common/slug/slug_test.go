package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"La Maldición", "la-maldicion"},
		{"El Bosque  Oscuro", "el-bosque-oscuro"},
		{"¡Año de la Ruina!", "ano-de-la-ruina"},
		{"---", ""},
		{"  trofeo  ", "trofeo"},
		{"Túmulo del Rey", "tumulo-del-rey"},
		{"ya-es-un-slug", "ya-es-un-slug"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Make(tc.title), "title %q", tc.title)
	}
}
