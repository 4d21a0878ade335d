package unitrates

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ScriptStep is a single action in a script.
type ScriptStep struct {
	Action string `yaml:"action"`

	// drag
	Target string  `yaml:"target,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`

	// drag, wait
	Frames int `yaml:"frames,omitempty"`

	// editor
	Numerator   *float64 `yaml:"numerator,omitempty"`
	Denominator *float64 `yaml:"denominator,omitempty"`

	// answer: index into the current question set; -1 is the unit rate
	// question.
	Question int     `yaml:"question,omitempty"`
	Guess    float64 `yaml:"guess,omitempty"`
}

// script is the top-level document.
type script struct {
	Steps []ScriptStep `yaml:"steps"`
}

// ScriptRunner sequences scripted actions against a ShoppingScene across
// frames. Drags are fed through an InputQueue; the runner waits for queued
// input to drain before taking the next step.
type ScriptRunner struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
	input     InputQueue
	log       zerolog.Logger
}

// LoadScript parses a YAML or JSON script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "drag":
			if st.Target == "" {
				return nil, fmt.Errorf("parse script: step %d: drag needs a target", i)
			}
		case "editor":
			if st.Numerator == nil && st.Denominator == nil {
				return nil, fmt.Errorf("parse script: step %d: editor needs numerator or denominator", i)
			}
		case "wait", "answer", "undo", "erase", "reset", "nextQuestionSet":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps, log: zerolog.Nop()}, nil
}

// SetLogger sets the logger that records each step. Nil disables logging.
func (r *ScriptRunner) SetLogger(logger *zerolog.Logger) {
	r.log = loggerOr(logger).With().Str("component", "script").Logger()
}

// Done reports whether every step has run and all input has drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. It is called before the scene's
// own Step.
func (r *ScriptRunner) Step(s *ShoppingScene) error {
	if r.done {
		return nil
	}
	if r.input.Process() {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++
	r.log.Debug().Int("step", r.cursor-1).Str("action", st.Action).Msg("apply")
	if err := r.apply(s, st); err != nil {
		return fmt.Errorf("step %d (%s): %w", r.cursor-1, st.Action, err)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.input.Len() == 0 {
		r.done = true
	}
	return nil
}

func (r *ScriptRunner) apply(s *ShoppingScene, st ScriptStep) error {
	switch st.Action {
	case "drag":
		target, movable := s.DraggableByName(st.Target)
		if target == nil {
			return fmt.Errorf("no visible bag or item named %q", st.Target)
		}
		from := movable.Position.Value()
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		r.input.InjectDrag(target, from.X, from.Y, st.X, st.Y, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "editor":
		if st.Denominator != nil {
			s.Editor.SetDenominator(*st.Denominator)
		}
		if st.Numerator != nil {
			s.Editor.SetNumerator(*st.Numerator)
		}
	case "answer":
		q, err := questionAt(s, st.Question)
		if err != nil {
			return err
		}
		q.Submit(st.Guess)
	case "undo":
		s.Line.Undo()
	case "erase":
		s.Line.Erase()
	case "reset":
		r.input.Clear()
		s.Reset()
	case "nextQuestionSet":
		s.NextQuestionSet()
	}
	return nil
}

func questionAt(s *ShoppingScene, index int) (*ShoppingQuestion, error) {
	if index == -1 {
		return s.UnitRateQuestion, nil
	}
	set := s.QuestionSet()
	if index < 0 || index >= len(set) {
		return nil, fmt.Errorf("question %d out of range [0, %d)", index, len(set))
	}
	return set[index], nil
}

// Run drives the runner and the scene with a fixed dt until the script is
// done and nothing is animating. It fails if that takes more than maxFrames.
func (r *ScriptRunner) Run(s *ShoppingScene, dt float64, maxFrames int) (frames int, err error) {
	for frames = 0; frames < maxFrames; frames++ {
		if r.done && !s.IsAnimating() {
			return frames, nil
		}
		if err := r.Step(s); err != nil {
			return frames, err
		}
		s.Step(dt)
	}
	return frames, fmt.Errorf("script did not settle within %d frames", maxFrames)
}
