package completion_helper

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestDefaultFlagComplete(t *testing.T) {
	var out bytes.Buffer
	cmd := &cli.Command{
		Name:   "matelint",
		Writer: &out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}},
			&cli.BoolFlag{Name: "strict"},
		},
	}

	DefaultFlagComplete(context.Background(), cmd)

	assert.Equal(t, "--config\n-c\n--strict\n", out.String())
}
