package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"

	"github.com/imamik/kubelift/cmd/kubelift/handlers"
	"github.com/imamik/kubelift/internal/manifest"
)

// Job returns the job command group.
func Job(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Run batch jobs",
	}
	cmd.AddCommand(jobRun(g))
	return cmd
}

func jobRun(g *globalFlags) *cobra.Command {
	var (
		namespace     string
		image         string
		labels        []string
		restartPolicy string
	)

	cmd := &cobra.Command{
		Use:   "run NAME -- COMMAND [ARGS...]",
		Short: "Create a job running a single container",
		Example: `  kubelift job run migrate -n shop --image api:1.4.0 -- ./migrate up
  kubelift job run report -n batch --image reporter:2 --restart-policy OnFailure --label team=data -- report`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			labelMap, err := parseLabels(labels)
			if err != nil {
				return err
			}
			return handlers.RunJob(cmd.Context(), g.options(), namespace, args[0], manifest.Job{
				Image:         image,
				Command:       args[1:],
				Labels:        labelMap,
				RestartPolicy: corev1.RestartPolicy(restartPolicy),
			})
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "Namespace")
	cmd.Flags().StringVar(&image, "image", "", "Container image (required)")
	cmd.Flags().StringArrayVar(&labels, "label", nil, "Pod label key=value (repeatable)")
	cmd.Flags().StringVar(&restartPolicy, "restart-policy", "", "Never (default) or OnFailure")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func parseLabels(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid label %q, expected key=value", p)
		}
		out[k] = v
	}
	return out, nil
}
