package interpreter

import (
	"fmt"
	"strings"

	"github.com/compose-spec/compose-go/v2/types"
	"go.uber.org/zap"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/command"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/schema"
)

// reportInert notes the fields the tool carries but does not act on
func (i *Interpreter) reportInert(plan *command.Plan, project *schema.Project, name string, svc schema.Service) {
	field := zap.String("service", name)

	if len(svc.DependsOn) > 0 {
		i.notice(plan, fmt.Sprintf("Service %s: depends_on (%s) is not enforced, services start in name order",
			name, strings.Join(svc.DependsOn, ", ")), field)
	}

	for _, port := range svc.Ports {
		configs, err := types.ParsePortConfig(port)
		if err != nil {
			i.warn(plan, fmt.Sprintf("Service %s: invalid port mapping %q: %v", name, port, err), field)
			continue
		}
		for _, config := range configs {
			published := config.Published
			if published == "" {
				published = "-"
			}
			i.notice(plan, fmt.Sprintf("Service %s: port %s->%d/%s is not published",
				name, published, config.Target, config.Protocol), field)
		}
	}

	if svc.Restart != "" {
		i.notice(plan, fmt.Sprintf("Service %s: restart policy %q is not enforced", name, svc.Restart), field)
	}
	if svc.HealthCheck != nil && !svc.HealthCheck.Disable {
		i.notice(plan, fmt.Sprintf("Service %s: healthcheck is not monitored", name), field)
	}

	for _, ref := range svc.Configs {
		if _, ok := project.Configs[ref.Source]; !ok {
			i.warn(plan, fmt.Sprintf("Service %s: config %s is not defined at the top level", name, ref.Source), field)
			continue
		}
		i.notice(plan, fmt.Sprintf("Service %s: config %s is not mounted", name, ref.Source), field)
	}
	for _, ref := range svc.Secrets {
		if _, ok := project.Secrets[ref.Source]; !ok {
			i.warn(plan, fmt.Sprintf("Service %s: secret %s is not defined at the top level", name, ref.Source), field)
			continue
		}
		i.notice(plan, fmt.Sprintf("Service %s: secret %s is not mounted", name, ref.Source), field)
	}
}
