package safety

import "math/rand"

// refusals is the fixed set of terse replies for flagged input.
var refusals = []string{
	"Я отвечаю только на вопросы про фотографию и оптику.",
	"Давай лучше про объективы и камеры.",
	"Это не ко мне. Спроси что-нибудь про фототехнику.",
	"Не обсуждаю. Есть вопрос по фотографии?",
}

// Responder picks a refusal uniformly at random. The picker is
// injectable so tests are deterministic.
type Responder struct {
	pick func(n int) int
}

func NewResponder() *Responder {
	return &Responder{pick: rand.Intn}
}

func NewResponderWithPick(pick func(n int) int) *Responder {
	return &Responder{pick: pick}
}

func (r *Responder) Refusal() string {
	return refusals[r.pick(len(refusals))]
}
