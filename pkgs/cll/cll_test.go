package cll

import (
	"context"
	"slices"
	"testing"

	"github.com/urfave/cli/v3"
)

type countCmd struct {
	min, max int
	got      []string
	err      error
}

func (c *countCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name: "count",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c.got, c.err = ArgsBetween(cmd, c.min, c.max)
			return nil
		},
	})
	return app
}

func TestArgsBetween(t *testing.T) {
	tests := []struct {
		name    string
		min     int
		max     int
		args    []string
		wantErr bool
	}{
		{name: "within bounds", min: 1, max: 2, args: []string{"a", "b"}},
		{name: "too few", min: 1, max: 2, args: nil, wantErr: true},
		{name: "too many", min: 0, max: 1, args: []string{"a", "b"}, wantErr: true},
		{name: "unbounded", min: 1, max: -1, args: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &countCmd{min: tt.min, max: tt.max}
			app := Register(&cli.Command{Name: "test"}, c)

			if err := app.Run(context.Background(), append([]string{"test", "count"}, tt.args...)); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if (c.err != nil) != tt.wantErr {
				t.Fatalf("ArgsBetween() error = %v, wantErr %v", c.err, tt.wantErr)
			}
			if !tt.wantErr && !slices.Equal(c.got, tt.args) {
				t.Errorf("ArgsBetween() = %v, want %v", c.got, tt.args)
			}
		})
	}
}

func TestEnvWithPrefix(t *testing.T) {
	t.Setenv("TESTAPP_HOME", "/srv/home")

	env := EnvWithPrefix("TESTAPP_")

	var home string
	app := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "home", Sources: env("HOME"), Destination: &home},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error { return nil },
	}

	if err := app.Run(context.Background(), []string{"test"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if home != "/srv/home" {
		t.Errorf("home = %q, want %q", home, "/srv/home")
	}
}
