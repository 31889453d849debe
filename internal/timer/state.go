package timer

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// FocusCheck is a prompt raised at Offset elapsed seconds. Answer is nil until
// the user responds.
type FocusCheck struct {
	Offset int
	Answer *bool
}

// State is the persisted timer snapshot.
type State struct {
	Elapsed int
	Subject string
	Topic   string
	// StartTime is nil until the timer is started.
	StartTime *time.Time
	Running   bool
	Break     bool

	FocusChecks    []FocusCheck
	LastCheck      int
	ShowFocusCheck bool

	PomodoroMinutes      int
	BreakMinutes         int
	CheckIntervalMinutes int
}

// Settings lists the configurable fields; nil fields are kept.
type Settings struct {
	Subject              *string
	Topic                *string
	PomodoroMinutes      *int
	BreakMinutes         *int
	CheckIntervalMinutes *int
}

// Status is a State with derived display values.
type Status struct {
	State
	// Progress is the elapsed share of the current phase in percent.
	Progress float64
	// Clock renders the elapsed time as MM:SS.
	Clock  string
	Saving bool
}

func (s State) target() int {
	if s.Break {
		return s.BreakMinutes * 60
	}

	return s.PomodoroMinutes * 60
}

func (s State) status(saving bool) Status {
	if s.FocusChecks != nil {
		s.FocusChecks = append([]FocusCheck(nil), s.FocusChecks...)
	}

	var progress float64
	if target := s.target(); target > 0 {
		progress = float64(s.Elapsed) / float64(target) * 100
	}

	return Status{
		State:    s,
		Progress: progress,
		Clock:    FormatClock(s.Elapsed),
		Saving:   saving,
	}
}

// FormatClock renders seconds as MM:SS; minutes are not wrapped into hours.
func FormatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Encode writes the snapshot as JSON.
func (s State) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("elapsed", func(e *jx.Encoder) { e.Int(s.Elapsed) })
		e.Field("subject", func(e *jx.Encoder) { e.Str(s.Subject) })
		e.Field("topic", func(e *jx.Encoder) { e.Str(s.Topic) })
		if s.StartTime != nil {
			e.Field("startTime", func(e *jx.Encoder) { e.Str(s.StartTime.Format(time.RFC3339Nano)) })
		}
		e.Field("running", func(e *jx.Encoder) { e.Bool(s.Running) })
		e.Field("break", func(e *jx.Encoder) { e.Bool(s.Break) })
		e.Field("focusChecks", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, c := range s.FocusChecks {
					c.Encode(e)
				}
			})
		})
		e.Field("lastCheck", func(e *jx.Encoder) { e.Int(s.LastCheck) })
		e.Field("showFocusCheck", func(e *jx.Encoder) { e.Bool(s.ShowFocusCheck) })
		e.Field("pomodoroMinutes", func(e *jx.Encoder) { e.Int(s.PomodoroMinutes) })
		e.Field("breakMinutes", func(e *jx.Encoder) { e.Int(s.BreakMinutes) })
		e.Field("checkIntervalMinutes", func(e *jx.Encoder) { e.Int(s.CheckIntervalMinutes) })
	})
}

// Decode reads a snapshot written by Encode. Unknown fields are skipped.
func (s *State) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "elapsed":
			s.Elapsed, err = d.Int()
		case "subject":
			s.Subject, err = d.Str()
		case "topic":
			s.Topic, err = d.Str()
		case "startTime":
			var raw string
			if raw, err = d.Str(); err != nil {
				break
			}
			t, perr := time.Parse(time.RFC3339Nano, raw)
			if perr != nil {
				return errors.Wrap(perr, "parse startTime")
			}
			s.StartTime = &t
		case "running":
			s.Running, err = d.Bool()
		case "break":
			s.Break, err = d.Bool()
		case "focusChecks":
			s.FocusChecks = s.FocusChecks[:0]
			err = d.Arr(func(d *jx.Decoder) error {
				var c FocusCheck
				if err := c.Decode(d); err != nil {
					return err
				}
				s.FocusChecks = append(s.FocusChecks, c)

				return nil
			})
		case "lastCheck":
			s.LastCheck, err = d.Int()
		case "showFocusCheck":
			s.ShowFocusCheck, err = d.Bool()
		case "pomodoroMinutes":
			s.PomodoroMinutes, err = d.Int()
		case "breakMinutes":
			s.BreakMinutes, err = d.Int()
		case "checkIntervalMinutes":
			s.CheckIntervalMinutes, err = d.Int()
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode field %q", key)
		}

		return nil
	})
}

// Encode writes the check as JSON; an unanswered check has a null answer.
func (c FocusCheck) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("offset", func(e *jx.Encoder) { e.Int(c.Offset) })
		e.Field("wasFocused", func(e *jx.Encoder) {
			if c.Answer == nil {
				e.Null()

				return
			}
			e.Bool(*c.Answer)
		})
	})
}

// Decode reads a check written by Encode.
func (c *FocusCheck) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "offset":
			v, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "decode offset")
			}
			c.Offset = v
		case "wasFocused":
			if d.Next() == jx.Null {
				return d.Null()
			}
			v, err := d.Bool()
			if err != nil {
				return errors.Wrap(err, "decode wasFocused")
			}
			c.Answer = &v
		default:
			return d.Skip()
		}

		return nil
	})
}
