package interpreter

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/command"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/network"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/schema"
)

func (i *Interpreter) createNetworks(ctx context.Context, plan *command.Plan, project *schema.Project, global map[string]string) error {
	for _, key := range schema.SortedKeys(project.Networks) {
		definition := project.Networks[key]

		name, err := network.DefinitionName(key, definition.Resource, i.env, global)
		if err != nil {
			return errors.Wrapf(err, "network %q", key)
		}

		if definition.External.Enabled {
			i.notice(plan, fmt.Sprintf("Network %s is external, not creating it", name),
				zap.String("network", key))
			continue
		}

		resolved, err := i.resolveResource(definition.Resource, global)
		if err != nil {
			return errors.Wrapf(err, "network %q", key)
		}

		spec := command.NetworkSpec{
			Name:       name,
			Driver:     resolved.Driver,
			Options:    resolved.DriverOpts,
			Labels:     resolved.Labels,
			Attachable: definition.Attachable,
			IPv6:       definition.EnableIPv6,
			Internal:   definition.Internal,
		}
		if err := i.execute(ctx, plan, command.NetworkCreate(key, spec)); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) createVolumes(ctx context.Context, plan *command.Plan, project *schema.Project, global map[string]string) error {
	for _, key := range schema.SortedKeys(project.Volumes) {
		definition := project.Volumes[key]

		name, err := network.DefinitionName(key, definition.Resource, i.env, global)
		if err != nil {
			return errors.Wrapf(err, "volume %q", key)
		}

		if definition.External.Enabled {
			i.notice(plan, fmt.Sprintf("Volume %s is external, not creating it", name),
				zap.String("volume", key))
			continue
		}

		resolved, err := i.resolveResource(definition.Resource, global)
		if err != nil {
			return errors.Wrapf(err, "volume %q", key)
		}

		spec := command.VolumeSpec{
			Name:    name,
			Driver:  resolved.Driver,
			Options: resolved.DriverOpts,
			Labels:  resolved.Labels,
		}
		if err := i.execute(ctx, plan, command.VolumeCreate(key, spec)); err != nil {
			return err
		}
	}
	return nil
}

// resolveResource substitutes variables in the driver, its options and the
// labels of a top-level resource
func (i *Interpreter) resolveResource(resource schema.Resource, global map[string]string) (schema.Resource, error) {
	driver, err := i.env.Resolve(resource.Driver, global)
	if err != nil {
		return schema.Resource{}, err
	}
	opts, err := i.env.ResolveAll(resource.DriverOpts, global)
	if err != nil {
		return schema.Resource{}, err
	}
	labels, err := i.env.ResolveAll(resource.Labels, global)
	if err != nil {
		return schema.Resource{}, err
	}

	resource.Driver = driver
	resource.DriverOpts = opts
	resource.Labels = labels
	return resource, nil
}

// reportFileResources notes top-level configs and secrets, which the tool
// has no way to provision
func (i *Interpreter) reportFileResources(plan *command.Plan, project *schema.Project) {
	for _, key := range schema.SortedKeys(project.Configs) {
		if project.Configs[key].External.Enabled {
			i.notice(plan, fmt.Sprintf("Config %s is external", key), zap.String("config", key))
			continue
		}
		i.notice(plan, fmt.Sprintf("Config %s is not provisioned, configs are informational only", key),
			zap.String("config", key))
	}
	for _, key := range schema.SortedKeys(project.Secrets) {
		if project.Secrets[key].External.Enabled {
			i.notice(plan, fmt.Sprintf("Secret %s is external", key), zap.String("secret", key))
			continue
		}
		i.notice(plan, fmt.Sprintf("Secret %s is not provisioned, secrets are informational only", key),
			zap.String("secret", key))
	}
}
