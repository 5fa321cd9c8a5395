package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "kubelift", cmd.Use)
	assert.True(t, cmd.SilenceUsage)

	for _, name := range []string{"config", "metrics-file", "debug"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
	assert.Equal(t, "c", cmd.PersistentFlags().Lookup("config").Shorthand)
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	expectedSubcommands := []string{
		"namespace",
		"deploy",
		"get",
		"delete",
		"job",
		"secret",
		"tls",
		"dns",
		"probe",
		"version",
		"completion",
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range expectedSubcommands {
		assert.True(t, subcommands[expected], "Expected subcommand %s not found", expected)
	}
	assert.Len(t, cmd.Commands(), len(expectedSubcommands))
}

func TestRoot_NestedCommands(t *testing.T) {
	tests := []struct {
		path []string
	}{
		{[]string{"namespace", "ensure"}},
		{[]string{"job", "run"}},
		{[]string{"secret", "set"}},
		{[]string{"tls", "bootstrap"}},
		{[]string{"tls", "upload"}},
		{[]string{"dns", "upsert"}},
		{[]string{"dns", "delete"}},
	}

	for _, tt := range tests {
		cmd, rest, err := Root().Find(tt.path)
		require.NoError(t, err, "%v", tt.path)
		assert.Empty(t, rest)
		assert.Equal(t, tt.path[len(tt.path)-1], cmd.Name())
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDeploy_RequiresFileAndNamespace(t *testing.T) {
	_, err := execute(t, "deploy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s)")
	assert.Contains(t, err.Error(), "file")
	assert.Contains(t, err.Error(), "namespace")
}

func TestJobRun_RequiresImage(t *testing.T) {
	_, err := execute(t, "job", "run", "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image")
}

func TestGet_Args(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no kind", nil, "requires a kind"},
		{"deployment without name", []string{"deployment"}, "accepts 2 arg(s)"},
		{"jobs with name", []string{"jobs", "x"}, "accepts 1 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Get(&globalFlags{})
			err := cmd.Args(cmd, tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	cmd := Get(&globalFlags{})
	assert.NoError(t, cmd.Args(cmd, []string{"jobs"}))
	assert.NoError(t, cmd.Args(cmd, []string{"service", "api"}))
}

func TestGlobalFlags_Options(t *testing.T) {
	g := &globalFlags{configPath: "prod.yaml", metricsFile: "/tmp/m.prom", debug: true}
	opts := g.options()
	assert.Equal(t, "prod.yaml", opts.ConfigPath)
	assert.Equal(t, "/tmp/m.prom", opts.MetricsFile)
}
