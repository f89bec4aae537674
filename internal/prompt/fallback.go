package prompt

import (
	"fmt"
	"strings"
)

const analysisSchema = `{
  "summary": string,
  "dominantMood": string,
  "moodScore": number (0-100),
  "highlights": string[],
  "advice": string[],
  "affirmation": string
}`

const movieSchema = `{
  "category": "string (joyful/comfort/grounding/reflective/motivational/balanced)",
  "headline": "string",
  "description": "string",
  "movies": [
    {
      "title": "string",
      "year": number,
      "tagline": "string",
      "imdbId": "string atau null",
      "genres": ["string"] (maksimal 3 genre),
      "reason": "string"
    }
  ]
}`

func FallbackDailyPrompt(data DailyPromptData) string {
	if len(data.Notes) == 0 {
		return fmt.Sprintf(`Anda adalah mentor journaling yang empatik. Tidak ada catatan yang ditulis pada %s.
Berikan tanggapan dalam format JSON dengan struktur:
%s
Gunakan bahasa Indonesia.`, data.Date, analysisSchema)
	}

	entries := make([]string, 0, len(data.Notes))
	for _, note := range data.Notes {
		entries = append(entries, fmt.Sprintf("Waktu: %s\nJudul: %s\nIsi: %s", note.Time, note.Title, note.Body))
	}

	return fmt.Sprintf(`Anda adalah mentor journaling yang empatik. Tinjau catatan harian yang ditulis pada %s.

Catatan:
%s

Berikan tanggapan dalam format JSON dengan struktur:
%s
Gunakan bahasa Indonesia dan sertakan rujukan spesifik ke catatan saat relevan.`,
		data.Date, strings.Join(entries, "\n\n---\n\n"), analysisSchema)
}

func FallbackWeeklyPrompt(data WeeklyPromptData) string {
	if len(data.Days) == 0 {
		return fmt.Sprintf(`Anda adalah analis jurnal mingguan. Tidak ada aktivitas jurnal antara %s dan %s.
Berikan tanggapan dalam format JSON:
%s
Gunakan bahasa Indonesia yang hangat.`, data.WeekStart, data.WeekEnd, analysisSchema)
	}

	entries := make([]string, 0, len(data.Days))
	for _, day := range data.Days {
		entries = append(entries, fmt.Sprintf(
			"Tanggal: %s\nRingkasan: %s\nMood dominan: %s (skor: %d)\nHighlight: %s\nSaran: %s",
			day.Date, day.Summary, day.DominantMood, day.MoodScore, day.Highlights, day.Advice,
		))
	}

	return fmt.Sprintf(`Anda adalah analis jurnal mingguan. Berikut adalah rangkuman harian antara %s dan %s.

Rangkuman harian:
%s

Ringkaslah perkembangan emosi mingguan, sebutkan mood dominan, sorotan penting, saran tindak lanjut, dan afirmasi motivasi. Balas dalam format JSON:
%s
Gunakan bahasa Indonesia yang hangat.`,
		data.WeekStart, data.WeekEnd, strings.Join(entries, "\n\n---\n\n"), analysisSchema)
}

func FallbackMoviePrompt(data MoviePromptData) string {
	lines := []string{"Mood tidak teridentifikasi"}
	if data.Mood != "" {
		lines[0] = "Mood dominan: " + data.Mood
	}
	if data.MoodScore != 0 {
		lines = append(lines, fmt.Sprintf("Skor mood: %d/100", data.MoodScore))
	}
	if data.Summary != "" {
		lines = append(lines, "Ringkasan minggu: "+data.Summary)
	}
	if len(data.Highlights) > 0 {
		lines = append(lines, "Highlights: "+strings.Join(data.Highlights, ", "))
	}
	if data.Affirmation != "" {
		lines = append(lines, "Afirmasi: "+data.Affirmation)
	}

	return fmt.Sprintf(`Kamu adalah asisten rekomendasi film yang ahli. Berdasarkan analisis mood mingguan pengguna berikut:

%s

Berikan 3 rekomendasi film yang sesuai dengan kondisi emosional pengguna. Film harus nyata, beragam, dan alasannya personal.

Kembalikan dalam format JSON berikut:
%s

Gunakan bahasa Indonesia yang hangat dan empatik.`, strings.Join(lines, "\n"), movieSchema)
}
