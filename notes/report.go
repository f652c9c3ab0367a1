package notes

import "time"

// Outcome records what happened to one topic.
type Outcome struct {
	Topic      string
	HasContent bool
	Err        error
	Duration   time.Duration
}

// Report 记录一次运行中每个主题的结果，按输入顺序排列。
type Report struct {
	Outcomes  []Outcome
	StartedAt time.Time
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

func (r *Report) Topics() int { return len(r.Outcomes) }

func (r *Report) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.HasContent {
			n++
		}
	}
	return n
}

func (r *Report) Failed() int { return r.Topics() - r.Succeeded() }
