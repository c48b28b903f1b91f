package history

import (
	"testing"
	"time"

	"github.com/adrianliechti/foaas-cli/pkg/history"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	md := Render([]history.Entry{
		{
			Operation: "Back",
			Message:   "Back the fuck off | now",
			Subtitle:  "- Alice",
			CreatedAt: time.Now(),
		},
	})

	assert.Contains(t, md, "| Back | Back the fuck off \\| now | - Alice |")
}
