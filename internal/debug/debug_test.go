package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"MuJoCo Model", "0 geoms"}, Lines("MuJoCo Model", 0))
	assert.Equal(t, []string{"arena", "1 geom"}, Lines("arena", 1))
	assert.Equal(t, []string{"arena", "4 geoms"}, New("arena", 4).lines)
}
