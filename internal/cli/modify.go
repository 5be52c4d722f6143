package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ierr "github.com/inkgraph/inkgraph/pkg/errors"
	sceneio "github.com/inkgraph/inkgraph/pkg/io"
	"github.com/inkgraph/inkgraph/pkg/modify"
)

func newModifyCmd() *cobra.Command {
	var (
		scenePath string
		diffPath  string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "modify",
		Short: "Apply an add/remove/modify diff to a scene",
		Long: `Apply an edit diff to a persisted scene file. The edit is atomic: any
validation issue rejects the whole diff, reports every problem found, and
leaves the scene unchanged.

The diff format:

  {
    "add": [{"id": "n1", "type": "rectangle"}],
    "remove": ["old"],
    "modify": [{"id": "n2", "changes": {"backgroundColor": "#ffec99"}}]
  }`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModify(cmd, scenePath, diffPath, output)
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", "scene file to edit (required)")
	cmd.Flags().StringVarP(&diffPath, "diff", "d", "", "diff JSON file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (defaults to the scene file)")
	_ = cmd.MarkFlagRequired("scene")
	_ = cmd.MarkFlagRequired("diff")

	return cmd
}

func runModify(cmd *cobra.Command, scenePath, diffPath, output string) error {
	logger := loggerFromContext(cmd.Context())

	scene, err := sceneio.ImportScene(scenePath)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	diffData, err := os.ReadFile(diffPath)
	if err != nil {
		return fmt.Errorf("read diff: %w", err)
	}
	diff, err := modify.ParseDiff(diffData)
	if err != nil {
		return reportIssues(err)
	}

	result, err := modify.Apply(scene.Elements, diff)
	if err != nil {
		return reportIssues(err)
	}

	logger.Info("applied diff",
		"added", len(result.Changes.AddedIDs),
		"removed", len(result.Changes.RemovedIDs),
		"modified", len(result.Changes.ModifiedIDs))

	scene.Elements = result.Elements
	if output == "" {
		output = scenePath
	}
	return sceneio.ExportScene(output, scene)
}

// reportIssues prints the issue list as JSON on stderr so scripted callers
// can branch on individual codes, then returns the error to fail the
// command.
func reportIssues(err error) error {
	var verr *ierr.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]any{"ok": false, "issues": verr.Issues})
	return fmt.Errorf("diff rejected with %d issue(s)", len(verr.Issues))
}
