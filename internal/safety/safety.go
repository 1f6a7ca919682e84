package safety

import "regexp"

// Intent categorizes why a message was flagged.
type Intent string

const (
	IntentIdentityProbe Intent = "identity_probe"
	IntentOverride      Intent = "instruction_override"
	IntentDisclosure    Intent = "prompt_disclosure"
)

type rule struct {
	intent Intent
	re     *regexp.Regexp
}

// The rule table is data, not logic: extend it without touching dispatch.
// Patterns are curated for a Russian/English chat audience. Note: \b is
// ASCII-only in RE2, so Cyrillic patterns anchor on whitespace instead.
var rules = []rule{
	// Probing for model/vendor identity.
	{IntentIdentityProbe, regexp.MustCompile(`(?i)на\s+как(ой|ую)\s+(модел|нейросет)`)},
	{IntentIdentityProbe, regexp.MustCompile(`(?i)(какая|какой|что)\s+(ты|у\s+тебя)\s+(за\s+)?(модель|нейросеть|llm)`)},
	{IntentIdentityProbe, regexp.MustCompile(`(?i)кто\s+тебя\s+(создал|сделал|обучил|разработал)`)},
	{IntentIdentityProbe, regexp.MustCompile(`(?i)(^|\s)ты\s+(чат\s*джипити|chatgpt|gpt|gemini|claude|llama|deepseek)`)},
	{IntentIdentityProbe, regexp.MustCompile(`(?i)what\s+(model|llm)\s+are\s+you`)},
	{IntentIdentityProbe, regexp.MustCompile(`(?i)are\s+you\s+(chatgpt|gpt|gemini|claude|llama|deepseek)`)},
	{IntentIdentityProbe, regexp.MustCompile(`(?i)who\s+(made|created|trained|built)\s+you`)},

	// Instruction override / role reassignment.
	{IntentOverride, regexp.MustCompile(`(?i)ignore\s+(all\s+)?(previous|prior|above)\s+instructions`)},
	{IntentOverride, regexp.MustCompile(`(?i)(забудь|игнорируй)\s+(все\s+|свои\s+|предыдущие\s+)?(инструкции|указания|правила|промпт)`)},
	{IntentOverride, regexp.MustCompile(`(?i)(теперь|отныне)\s+ты\s+(не\s+)?(бот|ассистент|эксперт|помощник|модель|играешь|будешь|должен)`)},
	{IntentOverride, regexp.MustCompile(`(?i)(представь|притворись),?\s+что\s+ты`)},
	{IntentOverride, regexp.MustCompile(`(?i)act\s+as\s+|pretend\s+(to\s+be|you\s+are)|you\s+are\s+now\s+`)},
	{IntentOverride, regexp.MustCompile(`(?i)режим\s+разработчика|developer\s+mode|\bjailbreak\b|\bDAN\b`)},

	// Verbatim system-instruction disclosure.
	{IntentDisclosure, regexp.MustCompile(`(?i)system\s+prompt`)},
	{IntentDisclosure, regexp.MustCompile(`(?i)системн\w*[а-яё]*\s+(промпт|подсказк|инструкци)`)},
	{IntentDisclosure, regexp.MustCompile(`(?i)(покажи|выведи|повтори|процитируй|print|show|reveal|repeat).{0,40}(инструкци|промпт|prompt|instructions)`)},
}

// Classify flags adversarial input. Any single rule match is enough.
func Classify(text string) (Intent, bool) {
	for _, r := range rules {
		if r.re.MatchString(text) {
			return r.intent, true
		}
	}
	return "", false
}
