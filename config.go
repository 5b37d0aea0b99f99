package machina

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Registry resolves the guard and effect names a machine configuration
// refers to. Configurations are data; the callables behind them are
// registered by the host before loading.
type Registry struct {
	guards  map[string]Guard
	effects map[string]Effect
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		guards:  make(map[string]Guard),
		effects: make(map[string]Effect),
	}
}

// RegisterGuard binds a name to a guard
func (r *Registry) RegisterGuard(name string, guard Guard) *Registry {
	r.guards[name] = guard
	return r
}

// RegisterEffect binds a name to an effect
func (r *Registry) RegisterEffect(name string, effect Effect) *Registry {
	r.effects[name] = effect
	return r
}

func (r *Registry) guard(name string) (Guard, bool) {
	guard, ok := r.guards[name]
	return guard, ok
}

func (r *Registry) effect(name string) (Effect, bool) {
	effect, ok := r.effects[name]
	return effect, ok
}

// MachineConfig is the serialized form of a machine definition. Guards
// and effects appear by registered name; the single and list forms
// mirror Definition's combinator semantics, with the list form taking
// precedence when both are present.
type MachineConfig struct {
	Name    string        `yaml:"name" json:"name"`
	Initial InitialConfig `yaml:"initial" json:"initial"`
	States  []StateConfig `yaml:"states" json:"states"`
}

// InitialConfig is the serialized entry transition
type InitialConfig struct {
	Effect  string   `yaml:"effect,omitempty" json:"effect,omitempty"`
	Effects []string `yaml:"effects,omitempty" json:"effects,omitempty"`
	To      string   `yaml:"to" json:"to"`
}

// StateConfig is one serialized state declaration. Kind is "regular"
// or "choice"; absent means regular.
type StateConfig struct {
	Name string             `yaml:"name" json:"name"`
	Kind string             `yaml:"kind,omitempty" json:"kind,omitempty"`
	On   []TransitionConfig `yaml:"on,omitempty" json:"on,omitempty"`
}

// TransitionConfig is one serialized edge declaration
type TransitionConfig struct {
	Trigger string   `yaml:"trigger,omitempty" json:"trigger,omitempty"`
	Guard   string   `yaml:"guard,omitempty" json:"guard,omitempty"`
	Guards  []string `yaml:"guards,omitempty" json:"guards,omitempty"`
	Effect  string   `yaml:"effect,omitempty" json:"effect,omitempty"`
	Effects []string `yaml:"effects,omitempty" json:"effects,omitempty"`
	To      string   `yaml:"to,omitempty" json:"to,omitempty"`
}

// LoadConfig parses a YAML machine configuration, resolves its guard
// and effect names through the registry, and compiles the result.
func LoadConfig(data []byte, reg *Registry, opts ...Option) (*StateMachine, error) {
	var config MachineConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, NewConfigurationError("MachineConfig", fmt.Sprintf("invalid YAML: %v", err))
	}
	def, err := config.Definition(reg)
	if err != nil {
		return nil, err
	}
	return Compile(def, opts...)
}

// Definition resolves the configuration into a compilable definition
func (c *MachineConfig) Definition(reg *Registry) (Definition, error) {
	def := Definition{
		Name: c.Name,
		Initial: InitialDef{
			To: c.Initial.To,
		},
	}

	var err error
	def.Initial.Effect, def.Initial.Effects, err = c.resolveEffects(reg, "initial", c.Initial.Effect, c.Initial.Effects)
	if err != nil {
		return Definition{}, err
	}

	for _, sc := range c.States {
		kind, err := parseStateKind(sc.Kind)
		if err != nil {
			return Definition{}, NewConfigurationError("MachineConfig",
				fmt.Sprintf("state '%s': %v", sc.Name, err))
		}

		sd := StateDef{Name: sc.Name, Kind: kind}
		for _, tc := range sc.On {
			td := TransitionDef{Trigger: tc.Trigger, To: tc.To}

			if tc.Guards != nil {
				td.Guards = make([]Guard, 0, len(tc.Guards))
				for _, name := range tc.Guards {
					guard, ok := reg.guard(name)
					if !ok {
						return Definition{}, NewConfigurationError("MachineConfig",
							fmt.Sprintf("state '%s': unknown guard '%s'", sc.Name, name))
					}
					td.Guards = append(td.Guards, guard)
				}
			} else if tc.Guard != "" {
				guard, ok := reg.guard(tc.Guard)
				if !ok {
					return Definition{}, NewConfigurationError("MachineConfig",
						fmt.Sprintf("state '%s': unknown guard '%s'", sc.Name, tc.Guard))
				}
				td.Guard = guard
			}

			td.Effect, td.Effects, err = c.resolveEffects(reg, sc.Name, tc.Effect, tc.Effects)
			if err != nil {
				return Definition{}, err
			}

			sd.Transitions = append(sd.Transitions, td)
		}
		def.States = append(def.States, sd)
	}

	return def, nil
}

func (c *MachineConfig) resolveEffects(reg *Registry, where, single string, list []string) (Effect, []Effect, error) {
	if list != nil {
		effects := make([]Effect, 0, len(list))
		for _, name := range list {
			effect, ok := reg.effect(name)
			if !ok {
				return nil, nil, NewConfigurationError("MachineConfig",
					fmt.Sprintf("state '%s': unknown effect '%s'", where, name))
			}
			effects = append(effects, effect)
		}
		return nil, effects, nil
	}
	if single != "" {
		effect, ok := reg.effect(single)
		if !ok {
			return nil, nil, NewConfigurationError("MachineConfig",
				fmt.Sprintf("state '%s': unknown effect '%s'", where, single))
		}
		return effect, nil, nil
	}
	return nil, nil, nil
}

func parseStateKind(kind string) (StateKind, error) {
	switch kind {
	case "", "regular":
		return KindRegular, nil
	case "choice":
		return KindChoice, nil
	default:
		return KindRegular, fmt.Errorf("unsupported kind '%s'", kind)
	}
}
