package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/replaykit/replay-cli/internal/platform"
	"github.com/replaykit/replay-cli/internal/script"
)

// readScriptText loads script text from a file path, or from stdin when
// path is "-".
func readScriptText(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read script: %w", err)
	}
	return string(data), nil
}

// selectScript picks one script from a parsed library. With a name, it must
// exist. Without one, a headerless script wins, then a lone named script;
// anything else needs --name.
func selectScript(lib *script.Library, name string) (*script.Script, error) {
	if name != "" {
		s, ok := lib.Get(name)
		if !ok {
			return nil, fmt.Errorf("no script named %q (available: %v)", name, lib.Names())
		}
		return s, nil
	}
	if s, ok := lib.Get(""); ok {
		return s, nil
	}
	switch len(lib.Scripts) {
	case 0:
		return nil, fmt.Errorf("script file contains no actions")
	case 1:
		return lib.Scripts[0], nil
	default:
		return nil, fmt.Errorf("file defines %d scripts, use --name to choose one of %v", len(lib.Scripts), lib.Names())
	}
}

// inputterFromProvider fetches the injection backend, with a uniform error
// when it is unavailable.
func inputterFromProvider() (platform.Inputter, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	if provider.Inputter == nil {
		return nil, fmt.Errorf("input injection not available on this platform")
	}
	return provider.Inputter, nil
}

// ActionInfo is a compact report of one parsed action, used by run --dry-run
// and check output.
type ActionInfo struct {
	Line    int    `yaml:"line"              json:"line"`
	Kind    string `yaml:"kind"              json:"kind"`
	DelayMs int64  `yaml:"delay_ms"          json:"delay_ms"`
	Detail  string `yaml:"detail,omitempty"  json:"detail,omitempty"`
}

// actionInfos summarizes a script's actions for reporting.
func actionInfos(s *script.Script) []ActionInfo {
	infos := make([]ActionInfo, len(s.Actions))
	for i, a := range s.Actions {
		infos[i] = ActionInfo{
			Line:    a.Line,
			Kind:    a.Kind.String(),
			DelayMs: a.Delay.Milliseconds(),
			Detail:  actionDetail(a),
		}
	}
	return infos
}

func actionDetail(a script.Action) string {
	switch a.Kind {
	case script.KindMove:
		return fmt.Sprintf("%d,%d", a.X, a.Y)
	case script.KindClick, script.KindHold, script.KindRelease:
		return a.Button.String()
	case script.KindHotkey:
		return strings.Join(a.Keys, "+")
	case script.KindWrite:
		return a.Text
	default:
		return ""
	}
}
