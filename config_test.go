package machina

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const turnstileYAML = `
name: turnstile
initial:
  to: locked
states:
  - name: locked
    on:
      - trigger: coin
        effect: unlock
        to: unlocked
  - name: unlocked
    on:
      - trigger: push
        effect: relock
        to: locked
`

func TestLoadConfig(t *testing.T) {
	t.Run("Turnstile", func(t *testing.T) {
		var effects []string
		reg := NewRegistry().
			RegisterEffect("unlock", func(obj Stateful, payload any, event Event) error {
				effects = append(effects, "unlock")
				return nil
			}).
			RegisterEffect("relock", func(obj Stateful, payload any, event Event) error {
				effects = append(effects, "relock")
				return nil
			})

		machine, err := LoadConfig([]byte(turnstileYAML), reg)
		require.NoError(t, err)
		assert.Equal(t, "turnstile", machine.Name())

		obj := NewTestObject("gate")
		require.NoError(t, machine.InitializeState(obj))
		assert.Equal(t, "locked", obj.StateName())

		require.NoError(t, Dispatch(obj, NewEvent("coin", nil)))
		assert.Equal(t, "unlocked", obj.StateName())

		require.NoError(t, Dispatch(obj, NewEvent("push", nil)))
		assert.Equal(t, "locked", obj.StateName())

		assert.Equal(t, []string{"unlock", "relock"}, effects)
	})

	t.Run("Choice state and guard list", func(t *testing.T) {
		config := `
name: intake
initial:
  to: triage
states:
  - name: triage
    kind: choice
    on:
      - guards: [flagged, large]
        to: review
      - to: accepted
  - name: review
  - name: accepted
`
		flagged, large := true, true
		reg := NewRegistry().
			RegisterGuard("flagged", func(obj Stateful, payload any) bool { return flagged }).
			RegisterGuard("large", func(obj Stateful, payload any) bool { return large })

		machine, err := LoadConfig([]byte(config), reg)
		require.NoError(t, err)

		obj := NewTestObject("doc")
		require.NoError(t, machine.InitializeState(obj))
		assert.Equal(t, "review", obj.StateName())

		large = false
		other := NewTestObject("doc2")
		require.NoError(t, machine.InitializeState(other))
		assert.Equal(t, "accepted", other.StateName())
	})

	t.Run("Empty guard list gates the edge shut", func(t *testing.T) {
		config := `
initial:
  to: gate
states:
  - name: gate
    on:
      - trigger: go
        guards: []
        to: through
  - name: through
`
		machine, err := LoadConfig([]byte(config), NewRegistry())
		require.NoError(t, err)

		obj := NewTestObject("doc")
		require.NoError(t, machine.InitializeState(obj))
		require.NoError(t, Dispatch(obj, NewEvent("go", nil)))
		assert.Equal(t, "gate", obj.StateName())
	})

	t.Run("Unknown guard", func(t *testing.T) {
		config := `
initial:
  to: a
states:
  - name: a
    on:
      - trigger: go
        guard: nope
`
		_, err := LoadConfig([]byte(config), NewRegistry())
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
		assert.Contains(t, err.Error(), "unknown guard 'nope'")
	})

	t.Run("Unknown effect", func(t *testing.T) {
		config := `
initial:
  to: a
states:
  - name: a
    on:
      - trigger: go
        effects: [nope]
`
		_, err := LoadConfig([]byte(config), NewRegistry())
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
		assert.Contains(t, err.Error(), "unknown effect 'nope'")
	})

	t.Run("Unsupported kind", func(t *testing.T) {
		config := `
initial:
  to: a
states:
  - name: a
    kind: parallel
`
		_, err := LoadConfig([]byte(config), NewRegistry())
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		_, err := LoadConfig([]byte("states: {{"), NewRegistry())
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("Empty config", func(t *testing.T) {
		_, err := LoadConfig([]byte(""), NewRegistry())
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})
}
