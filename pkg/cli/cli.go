package cli

import (
	"errors"
	"strings"

	"github.com/adrianliechti/go-cli"
	"github.com/charmbracelet/huh"
	ucli "github.com/urfave/cli/v3"
)

type Command = ucli.Command

type Flag = ucli.Flag
type IntFlag = ucli.IntFlag
type StringFlag = ucli.StringFlag
type BoolFlag = ucli.BoolFlag
type DurationFlag = ucli.DurationFlag

var ErrAborted = huh.ErrUserAborted

func ShowAppHelp(cmd *Command) error {
	return ucli.ShowAppHelp(cmd)
}

func ShowCommandHelp(cmd *Command) error {
	return ucli.ShowSubcommandHelp(cmd)
}

func Info(a ...any) {
	cli.Info(a...)
}

func Infof(format string, a ...any) {
	cli.Infof(format, a...)
}

func Debug(a ...any) {
	cli.Debug(a...)
}

func Fatal(err error) {
	cli.Fatal(err)
}

// Run shows a spinner with title while fn runs.
func Run(title string, fn func() error) error {
	return cli.Run(title, fn)
}

type Option struct {
	Key   string
	Value string
}

func Select(title string, options []Option) (string, error) {
	var value string

	var items []huh.Option[string]

	for _, o := range options {
		items = append(items, huh.NewOption(o.Key, o.Value))
	}

	err := huh.NewSelect[string]().
		Title(title).
		Options(items...).
		Filtering(true).
		Height(12).
		Value(&value).
		Run()

	return value, err
}

func Input(title, placeholder string) (string, error) {
	var value string

	err := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New(strings.ToLower(title) + " is required")
			}

			return nil
		}).
		Value(&value).
		Run()

	return strings.TrimSpace(value), err
}
