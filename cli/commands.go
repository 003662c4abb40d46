package cli

import (
	"github.com/mitchellh/cli"
	"github.com/ryotarai/machine/ec2"
)

func Commands(meta *Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"ls": func() (cli.Command, error) {
			return &LsCommand{Meta: meta}, nil
		},
		"create": func() (cli.Command, error) {
			return &CreateCommand{Meta: meta}, nil
		},
		"start": func() (cli.Command, error) {
			return &InstanceCommand{Meta: meta, action: actionStart}, nil
		},
		"stop": func() (cli.Command, error) {
			return &InstanceCommand{Meta: meta, action: actionStop}, nil
		},
		"terminate": func() (cli.Command, error) {
			return &InstanceCommand{Meta: meta, action: actionTerminate}, nil
		},
		"image create": func() (cli.Command, error) {
			return &ImageCreateCommand{Meta: meta}, nil
		},
		"image ls": func() (cli.Command, error) {
			return &ImageLsCommand{Meta: meta}, nil
		},
		"image rm": func() (cli.Command, error) {
			return &ImageRmCommand{Meta: meta}, nil
		},
		"ssh-config": func() (cli.Command, error) {
			return &SSHConfigCommand{Meta: meta}, nil
		},
		"reap": func() (cli.Command, error) {
			return &ReapCommand{Meta: meta}, nil
		},
		"serve": func() (cli.Command, error) {
			return &ServeCommand{Meta: meta}, nil
		},
		"config": func() (cli.Command, error) {
			return &ConfigCommand{Meta: meta}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{Meta: meta}, nil
		},
	}
}

var _ EC2 = (*ec2.Client)(nil)
