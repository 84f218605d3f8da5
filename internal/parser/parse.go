package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command or a choice number.", Options: nil}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	if len(tokens) == 1 {
		if n, ok := parseChoiceToken(tokens[0]); ok && tokens[0] != "a" && tokens[0] != "b" && tokens[0] != "c" {
			return p.chooseIntent(ctx, intent, n)
		}
	}

	cmdMatch, alternates := p.registry.matchCommand(tokens)
	weak := cmdMatch.Canonical == "" || cmdMatch.Score < 0.5
	// A fuzzy command hit loses to a recognised free-text phrase.
	if weak || cmdMatch.Source == "lev" {
		inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised)
		if inferred != nil {
			return *inferred
		}
	}
	if weak {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try next, choose, stats, activities, friends, store, do, buy, help.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				{
					Raw:        raw,
					Normalised: cmdMatch.Canonical,
					Kind:       commandKind(cmdMatch.Canonical),
					Verb:       cmdMatch.Canonical,
					Confidence: cmdMatch.Score,
				},
				{
					Raw:        raw,
					Normalised: alternates[0].Canonical,
					Kind:       commandKind(alternates[0].Canonical),
					Verb:       alternates[0].Canonical,
					Confidence: alternates[0].Score,
				},
			},
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}

	def, _ := p.registry.command(intent.Verb)
	if def.Canonical == "choose" && len(argsTokens) > 0 {
		if n, ok := parseChoiceToken(argsTokens[0]); ok {
			return p.chooseIntent(ctx, intent, n)
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%q is not a choice number.", argsTokens[0])}
		intent.Confidence = 0.42
		return intent
	}

	resolvedArgs, clarify, argScore := p.resolveArgs(ctx, def, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolvedArgs
	if len(resolvedArgs) > 0 {
		intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))
	}

	if intent.Kind == Command && len(intent.Args) < def.MinArgs {
		options := buildEntityOptions(ctx, def.Canonical, 5)
		if len(options) > 0 {
			intent.Clarify = &ClarifyQuestion{
				Prompt:  fmt.Sprintf("What should I %s?", def.Canonical),
				Options: options,
			}
			intent.Confidence = 0.46
			return intent
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}

	if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 && intent.Clarify == nil {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

func (p *Parser) chooseIntent(ctx ParseContext, intent Intent, n int) Intent {
	intent.Verb = "choose"
	intent.Kind = Command
	intent.Args = []string{strconv.Itoa(n)}
	intent.Confidence = 0.98
	if ctx.ChoiceCount > 0 && n > ctx.ChoiceCount {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("Pick a choice between 1 and %d.", ctx.ChoiceCount)}
		intent.Confidence = 0.4
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "stats", "activities", "friends", "store":
		return Query
	default:
		return Command
	}
}

// resolveArgs treats everything after do/buy as one entity name.
func (p *Parser) resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}
	pool := entityPool(ctx, def.Canonical)
	if pool == nil {
		return append([]string(nil), args...), nil, 0.88
	}

	phrase := strings.Join(stripFillers(args), " ")
	if phrase == "" {
		return nil, nil, 0.9
	}
	entity, confidence, tie := bestMatches(phrase, pool)
	if tie && len(entity) >= 2 {
		options := make([]Intent, 0, 2)
		for idx := 0; idx < 2; idx++ {
			options = append(options, Intent{
				Kind:       commandKind(def.Canonical),
				Verb:       def.Canonical,
				Args:       []string{entity[idx]},
				Confidence: confidence - float64(idx)*0.01,
			})
		}
		return nil, &ClarifyQuestion{
			Prompt:  fmt.Sprintf("Did you mean %s?", def.Canonical),
			Options: options,
		}, 0.52
	}
	if len(entity) == 1 {
		return entity, nil, confidence
	}
	return []string{phrase}, nil, 0.3
}

func entityPool(ctx ParseContext, verb string) []string {
	switch verb {
	case "do":
		return ctx.Activities
	case "buy":
		return ctx.StoreItems
	default:
		return nil
	}
}

// bestMatches scores token against the candidate names. Returned values are
// normalised candidate names.
func bestMatches(token string, all []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}

	results := make([]scored, 0, len(all))
	for _, raw := range all {
		cand := normaliseInput(raw)
		if cand == "" {
			continue
		}
		bare := strings.Join(stripFillers(tokenise(cand)), " ")
		score := 0.0
		switch {
		case token == cand || token == bare:
			score = 1.0
		case (strings.HasPrefix(cand, token) || strings.HasPrefix(bare, token)) && len(token) >= 2:
			score = 0.9
		case containsWord(cand, token) && len(token) >= 3:
			score = 0.85
		default:
			dist := min(levenshtein.ComputeDistance(token, cand), levenshtein.ComputeDistance(token, bare))
			if dist > levenshteinLimit(len(bare)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func buildEntityOptions(ctx ParseContext, verb string, maxOptions int) []Intent {
	seen := map[string]bool{}
	options := make([]Intent, 0, maxOptions)
	for _, entity := range entityPool(ctx, verb) {
		n := normaliseInput(entity)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		options = append(options, Intent{
			Kind:       commandKind(verb),
			Verb:       verb,
			Args:       []string{n},
			Confidence: 0.88,
		})
		if len(options) >= maxOptions {
			break
		}
	}
	return options
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n, "what do i have", "my stuff", "my stats", "how am i", "check myself") {
		return makeIntent(Query, "stats", nil, 0.9)
	}
	if containsAnyPhrase(n, "what can i do", "something to do", "im bored", "i m bored") {
		return makeIntent(Query, "activities", nil, 0.86)
	}
	if containsAnyPhrase(n, "my friends", "who do i know") {
		return makeIntent(Query, "friends", nil, 0.88)
	}
	if containsAnyPhrase(n, "go shopping", "the store", "the shop", "what can i buy", "spend money") {
		return makeIntent(Query, "store", nil, 0.86)
	}
	if containsAnyPhrase(n, "next day", "go to sleep", "end the day", "tomorrow") {
		return makeIntent(Command, "next", nil, 0.84)
	}

	// Free-text mention of a known activity or store item.
	tokens := stripFillers(tokenise(n))
	if len(tokens) > 0 {
		phrase := strings.Join(tokens, " ")
		if m, confidence, tie := bestMatches(phrase, ctx.Activities); !tie && len(m) == 1 && confidence >= 0.85 {
			return makeIntent(Command, "do", m, confidence-0.05)
		}
		if m, confidence, tie := bestMatches(phrase, ctx.StoreItems); !tie && len(m) == 1 && confidence >= 0.85 {
			return makeIntent(Command, "buy", m, confidence-0.1)
		}
	}

	return nil
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func containsWord(value, word string) bool {
	w := normaliseInput(word)
	if w == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+w+" ")
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args))
	for _, arg := range intent.Args {
		n := normaliseInput(arg)
		if n != "" {
			args = append(args, n)
		}
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
