package config

import (
	"errors"
	"fmt"

	"github.com/appserver-io/confnode/model"
	"github.com/robfig/cron/v3"
	"go.uber.org/multierr"
)

var cronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

type validator struct {
	err        error
	containers map[string]bool
}

func (v *validator) Err() error {
	return v.err
}

func (v *validator) Visit(node model.Node) model.Visitor {
	switch n := node.(type) {
	case *model.ContainerNode:
		if len(n.Name()) == 0 {
			multierr.AppendInto(&v.err, errors.New("container name missing"))
			return v
		}
		if v.containers[n.Name()] {
			multierr.AppendInto(&v.err, fmt.Errorf("duplicate container %q", n.Name()))
		}
		v.containers[n.Name()] = true

	case *model.ServerNode:
		if len(n.Name()) == 0 {
			multierr.AppendInto(&v.err, errors.New("server name missing"))
		}

	case *model.DatasourceNode:
		if len(n.Name()) == 0 {
			multierr.AppendInto(&v.err, errors.New("datasource name missing"))
		}

	case *model.ProvisionerNode:
		if len(n.Name()) == 0 {
			multierr.AppendInto(&v.err, errors.New("provisioner name missing"))
		}

	case *model.JobNode:
		if len(n.Name()) == 0 {
			multierr.AppendInto(&v.err, errors.New("job name missing"))
			// won't process anymore, as we have no name
			return v
		}

		if len(n.Schedule()) == 0 {
			multierr.AppendInto(&v.err, fmt.Errorf("missing schedule for job %q", n.Name()))
		} else if _, err := cronParser.Parse(n.Schedule()); err != nil {
			multierr.AppendInto(&v.err, fmt.Errorf("error parsing schedule for job %q, cron %q: %w", n.Name(), n.Schedule(), err))
		}

		if n.Execute() == nil || len(n.Execute().Script()) == 0 {
			multierr.AppendInto(&v.err, fmt.Errorf("missing script for job %q", n.Name()))
		}

	case *model.Param:
		if len(n.Name()) == 0 {
			multierr.AppendInto(&v.err, errors.New("param name missing"))
			return v
		}
		multierr.AppendInto(&v.err, n.Check())
	}

	return v
}

// Validate reports every structural error of the tree at once. Unset type
// attributes are not errors here; see Unbound.
func Validate(root *model.Appserver) error {
	v := validator{containers: make(map[string]bool)}
	model.Walk(&v, root)
	return v.Err()
}
