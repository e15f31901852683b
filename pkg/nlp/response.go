package nlp

import (
	"StatMedan/internal/entity"
	"context"
	"fmt"
	"strings"
)

const (
	greetingMessage = "👋 Senang bertemu dengan Anda! Saya siap membantu Anda menemukan data statistik resmi BPS Kota Medan."
	thanksMessage   = "Sama-sama! 😊 Saya senang bisa membantu. Silakan tanyakan lagi jika ada yang lain!"
	identityMessage = "Saya adalah AI Data Assistant khusus untuk BPS Kota Medan! 🤖 Saya diciptakan untuk membantu Anda mengakses dan mencari data statistik resmi BPS dengan mudah."
	listIntro       = "Tentu saja, 📊 BPS Kota Medan memiliki %d kategori utama statistik, antara lain:\n\n"
	foundIntro      = "Tentu, saya menemukan beberapa data yang relevan terkait \"%s\".\n\n"
	bestMatchHeader = "**Berikut hasil yang paling sesuai:**\n"
	relatedHeader   = "\n**Mungkin Anda juga tertarik dengan data ini:**\n"
	foundClosing    = "\nUntuk informasi lebih detail, Anda bisa langsung mengunjungi tautan sumber resmi BPS di bawah ini. 🔗"
	notFoundMessage = "Maaf, saya tidak menemukan data yang relevan dengan pertanyaan Anda. 🙏 Coba gunakan kata kunci yang lebih spesifik seperti \"populasi\", \"ekonomi\", \"pendidikan\", atau \"infrastruktur\"."

	maxBestMatches = 2
	maxRelated     = 3
)

// GenerateResponse composes the assistant reply for text. Any intent outside
// the known set is answered as an information request.
func (nlp *NLPProcessor) GenerateResponse(ctx context.Context, text string, intent Intent, results []entity.Dataset) string {
	switch intent {
	case IntentGreeting:
		return ExtractGreeting(text) + greetingMessage
	case IntentThanks:
		return thanksMessage
	case IntentIdentity:
		return identityMessage
	case IntentList:
		return nlp.listResponse(ctx)
	case IntentInformation:
		return nlp.informationResponse(ctx, text, results)
	}

	return nlp.informationResponse(ctx, text, results)
}

func (nlp *NLPProcessor) listResponse(ctx context.Context) string {
	categories := nlp.categories(ctx)

	var b strings.Builder
	fmt.Fprintf(&b, listIntro, len(categories))
	for i, category := range categories {
		fmt.Fprintf(&b, "%d. %s\n", i+1, category)
	}
	return b.String()
}

func (nlp *NLPProcessor) informationResponse(ctx context.Context, text string, results []entity.Dataset) string {
	greetingPrefix := ExtractGreeting(text)
	cleanedQuery := CleanQuery(text)

	if len(results) == 0 {
		return greetingPrefix + notFoundMessage
	}

	keywordResults := nlp.keywordResults(ctx, text)
	searchResults := ExcludeResults(results, keywordResults)

	var b strings.Builder
	b.WriteString(greetingPrefix)
	fmt.Fprintf(&b, foundIntro, cleanedQuery)

	if len(keywordResults) > 0 {
		b.WriteString(bestMatchHeader)
		for _, item := range head(keywordResults, maxBestMatches) {
			fmt.Fprintf(&b, "- %s\n", item.Title)
		}
	}

	if len(searchResults) > 0 {
		b.WriteString(relatedHeader)
		for _, item := range head(searchResults, maxRelated) {
			fmt.Fprintf(&b, "- %s\n", item.Title)
		}
	}

	b.WriteString(foundClosing)
	return b.String()
}

func head(items []entity.Dataset, n int) []entity.Dataset {
	if len(items) > n {
		return items[:n]
	}
	return items
}
