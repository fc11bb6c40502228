//go:build unit

package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReservationMessage(t *testing.T) {
	html, err := RenderReservationMessage("Wir freuen uns auf euch!")
	require.NoError(t, err)

	assert.Contains(t, html, "Nachricht zu deiner Reservierung")
	assert.Contains(t, html, "Wir freuen uns auf euch!")
	assert.Contains(t, html, "Katharinengasse 14, 90403 N&uuml;rnberg")
	assert.Contains(t, html, "MOGGI")
}

func TestRenderOrderMessage(t *testing.T) {
	html, err := RenderOrderMessage("Deine Bestellung ist fertig.")
	require.NoError(t, err)

	assert.Contains(t, html, "Nachricht zu deiner Bestellung")
	assert.Contains(t, html, "Deine Bestellung ist fertig.")
}

func TestRenderEscapesMessage(t *testing.T) {
	html, err := RenderReservationMessage(`<script>alert("x")</script>`)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderNoShowNotice(t *testing.T) {
	html, err := RenderNoShowNotice("Anna Schmidt", "2025-03-07", "19:00")
	require.NoError(t, err)

	assert.Contains(t, html, "Deine Reservierung bei MOGGI")
	assert.Contains(t, html, "Hallo Anna Schmidt,")
	assert.Contains(t, html, "am 2025-03-07 um 19:00 Uhr")
	assert.Contains(t, html, "Dein MOGGI Team")
}

func TestDefaultSubject(t *testing.T) {
	assert.Equal(t, "Nachricht zu deiner Bestellung", DefaultSubject("order"))
	assert.Equal(t, "Nachricht zu deiner Reservierung", DefaultSubject("reservation"))
	assert.Equal(t, "Nachricht zu deiner Reservierung", DefaultSubject(""))
}

func TestRenderPreservesLineBreaks(t *testing.T) {
	html, err := RenderReservationMessage("Zeile eins\nZeile zwei")
	require.NoError(t, err)

	// The layout relies on white-space:pre-wrap, so the newline must survive.
	assert.True(t, strings.Contains(html, "Zeile eins\nZeile zwei"))
}
