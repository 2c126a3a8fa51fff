package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Convocation {
	return Convocation{
		StudentName: "Amina Alaoui",
		CNE:         "R130000",
		StreamName:  "IAA",
		SubjectName: "Deep learning",
		RoomName:    "Amphi A",
		TableNumber: 42,
		StartsAt:    time.Date(2025, 6, 12, 9, 5, 0, 0, time.UTC),
	}
}

func TestRenderWritesReadableDocument(t *testing.T) {
	r := NewRenderer("", "")
	r.Compress = false

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sample()))

	out := buf.String()
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	for _, want := range []string{
		"Nom complet : Amina Alaoui",
		"CNE : R130000",
		"Salle : Amphi A",
		"Table : 42",
		"Date : 12/06/2025",
		"09:05",
		"Convocation d'Examen",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderPrintsDashForMissingCodes(t *testing.T) {
	r := NewRenderer("", "")
	r.Compress = false

	c := sample()
	c.CNE = ""
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, c))
	assert.Contains(t, buf.String(), "CNE : -")
}

func TestRenderCompressed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer("Faculté des Sciences", "Convocation").Render(&buf, sample()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.NotContains(t, buf.String(), "Amina Alaoui")
}
