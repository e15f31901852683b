package nlp

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Order matters: the classifier strips greetings in this order.
var greetingKeywords = []string{
	"halo", "hai", "hello", "selamat pagi", "selamat siang", "selamat sore", "selamat malam",
	"pagi", "siang", "sore", "malam", "hey",
	"apa kabar", "greetings", "salutations", "yo", "hiya", "howdy", "syalom", "horas", "alo",
}

var fillerWords = []string{
	// perintah & permintaan
	"tolong", "carikan", "berikan", "kasih", "mohon", "coba", "lihat", "beri", "cari", "cariin",
	"tampilkan", "tunjuk", "tunjukin", "tunjukkan", "sajikan", "buatkan", "kirimkan", "minta",
	// kata tanya
	"apa", "apakah", "bagaimana", "di mana", "kapan", "mengapa", "siapa", "berapa",
	"adakah", "bisakah", "bisa", "bisaka",
	// kata ganti
	"saya", "aku", "anda", "kamu", "dia", "ia", "kita", "kami", "kalian", "mereka",
	"ku", "mu", "nya",
	// kata sambung & preposisi
	"tapi", "namun", "serta", "lalu", "kemudian", "di", "ke", "dari",
	"pada", "untuk", "dengan", "tentang", "yang", "padaku", "padamu",
	"padanya", "oleh", "sebagai", "karena", "agar", "supaya",
	// kata keterangan umum
	"sekarang", "hari", "ini", "itu", "adalah", "yaitu", "yakni", "seperti", "saja",
	"semua", "lebih", "kurang", "banyak", "sedikit", "ingin", "mau", "tahu",
	// informal
	"dong", "ya", "ga", "nggak", "gak", "sih", "deh", "kok", "kek", "kayak", "tau",
}

var (
	greetingsByLength []string
	greetingPattern   *regexp.Regexp
)

func init() {
	if len(greetingKeywords) == 0 || len(fillerWords) == 0 {
		panic(ErrEmptyVocabulary)
	}

	greetingsByLength = make([]string, len(greetingKeywords))
	copy(greetingsByLength, greetingKeywords)
	sort.SliceStable(greetingsByLength, func(i, j int) bool {
		return utf8.RuneCountInString(greetingsByLength[i]) > utf8.RuneCountInString(greetingsByLength[j])
	})

	quoted := make([]string, len(greetingKeywords))
	for i, g := range greetingKeywords {
		quoted[i] = regexp.QuoteMeta(g)
	}
	greetingPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

// GreetingKeywords returns a copy of the greeting vocabulary.
func GreetingKeywords() []string {
	out := make([]string, len(greetingKeywords))
	copy(out, greetingKeywords)
	return out
}

// FillerWords returns a copy of the filler-word vocabulary.
func FillerWords() []string {
	out := make([]string, len(fillerWords))
	copy(out, fillerWords)
	return out
}
