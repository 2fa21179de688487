package cascade

import (
	"os"
	"sync"

	"github.com/arthur-debert/cascade/pkg/config"
	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/logging"
	"github.com/arthur-debert/cascade/pkg/output"
	"github.com/arthur-debert/cascade/pkg/resolver"
	"github.com/arthur-debert/cascade/pkg/settings"
	"github.com/spf13/cobra"
)

type resolveFlags struct {
	rcName       string
	rcPath       string
	packageField string
	noConfig     bool
	settings     []string
	use          []string
	output       string
	cwd          string
	configFile   string
	format       string
	noColor      bool
}

func newResolveCmd() *cobra.Command {
	var f resolveFlags

	cmd := &cobra.Command{
		Use:     "resolve <files...>",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, f, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.rcName, "rc-name", "", MsgFlagRCName)
	flags.StringVar(&f.rcPath, "rc-path", "", MsgFlagRCPath)
	flags.StringVar(&f.packageField, "package-field", "", MsgFlagPackageField)
	flags.BoolVar(&f.noConfig, "no-config", false, MsgFlagNoConfig)
	flags.StringArrayVarP(&f.settings, "setting", "s", nil, MsgFlagSetting)
	flags.StringSliceVarP(&f.use, "use", "u", nil, MsgFlagUse)
	flags.StringVarP(&f.output, "output", "o", "", MsgFlagOutput)
	flags.StringVar(&f.cwd, "cwd", "", MsgFlagCwd)
	flags.StringVar(&f.configFile, "config", "", MsgFlagConfig)
	flags.StringVarP(&f.format, "format", "f", "json", MsgFlagFormat)
	flags.BoolVar(&f.noColor, "no-color", false, MsgFlagNoColor)

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return output.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// flagOverrides collects the flags given on the command line as settings
// keys. Flags left at their defaults do not override lower layers.
func flagOverrides(cmd *cobra.Command, f resolveFlags) (map[string]interface{}, error) {
	changed := cmd.Flags().Changed

	overrides, err := settings.SettingsFlags(f.settings)
	if err != nil {
		return nil, err
	}
	if changed("rc-name") {
		overrides[settings.KeyRCName] = f.rcName
	}
	if changed("rc-path") {
		overrides[settings.KeyRCPath] = f.rcPath
	}
	if changed("package-field") {
		overrides[settings.KeyPackageField] = f.packageField
	}
	if f.noConfig {
		overrides[settings.KeyDetectConfig] = false
	}
	if len(f.use) > 0 {
		plugins := make([]interface{}, 0, len(f.use))
		for _, name := range f.use {
			plugins = append(plugins, name)
		}
		overrides[settings.KeyPlugins] = plugins
	}
	if changed("output") {
		overrides[settings.KeyOutput] = f.output
	}
	if changed("cwd") {
		overrides[settings.KeyCwd] = f.cwd
	}
	return overrides, nil
}

type resolveResult struct {
	cfg config.Config
	err error
}

func runResolve(cmd *cobra.Command, f resolveFlags, files []string) error {
	logger := logging.GetLogger("cmd.resolve")
	defer logging.LogOperationStart(logger, "resolve")()

	format, err := output.ParseFormat(f.format)
	if err != nil {
		return err
	}

	overrides, err := flagOverrides(cmd, f)
	if err != nil {
		return err
	}

	opts, err := settings.Load(settings.Sources{File: f.configFile, Flags: overrides})
	if err != nil {
		return err
	}

	r, err := resolver.New(opts)
	if err != nil {
		return err
	}

	results := make([]resolveResult, len(files))
	var wg sync.WaitGroup
	for i, file := range files {
		i := i
		wg.Add(1)
		r.Resolve(file, func(cfg config.Config, err error) {
			defer wg.Done()
			results[i] = resolveResult{cfg: cfg, err: err}
		})
	}
	wg.Wait()

	logger.Info().
		Int("files", len(files)).
		Strs("directories", r.Directories()).
		Msg("Resolution completed")

	noColor := f.noColor || !output.DetectColor(os.Stdout)
	out := output.NewRenderer(cmd.OutOrStdout(), format, noColor)
	errOut := output.NewRenderer(cmd.ErrOrStderr(), format, f.noColor || !output.DetectColor(os.Stderr))

	var firstErr error
	failed := 0
	for i, file := range files {
		res := results[i]
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			failed++
			if err := errOut.RenderError(file, res.err); err != nil {
				return err
			}
			continue
		}

		if len(files) == 1 {
			err = out.RenderConfig(res.cfg)
		} else {
			err = out.RenderFile(file, res.cfg)
		}
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to write output")
		}
	}

	if failed > 0 {
		return errors.Newf(errors.GetErrorCode(firstErr), MsgResolveFailed, failed, len(files))
	}
	return nil
}
