package services

import (
	"sort"
	"strings"

	"hotelops/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const guestMatchThreshold = 0.6

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return strings.Join(strings.Fields(input), " ")
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{1, 2})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// suggestRoom gợi ý tên phòng gần nhất với tên nhập sai
func suggestRoom(query string, rooms []models.Room) string {
	if len(rooms) == 0 {
		return ""
	}
	names := make([]string, 0, len(rooms))
	byKey := make(map[string]string, len(rooms))
	for _, r := range rooms {
		key := normalizeInput(r.RoomName)
		names = append(names, key)
		byKey[key] = r.RoomName
	}
	return byKey[createMatcher(names).Closest(normalizeInput(query))]
}

// guestScore chấm điểm booking theo tên khách, số điện thoại hoặc mã tham chiếu
func guestScore(query string, b models.Booking) float64 {
	q := normalizeInput(query)
	if q == "" {
		return 0
	}

	digits := onlyDigits(q)
	if len(digits) >= 4 && strings.Contains(onlyDigits(b.GuestPhone), digits) {
		return 1.0
	}
	if strings.EqualFold(b.ReferenceCode, strings.TrimSpace(query)) {
		return 1.0
	}

	name := normalizeInput(b.GuestName)
	if name == "" {
		return 0
	}
	if strings.Contains(name, q) {
		return 0.9
	}

	best := calculateSimilarity(q, name)
	for _, part := range strings.Fields(name) {
		if s := calculateSimilarity(q, part); s > best {
			best = s
		}
	}
	return best
}

func onlyDigits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

type scoredBooking struct {
	booking models.Booking
	score   float64
}

// rankGuests lọc và sắp xếp booking theo điểm giảm dần
func rankGuests(query string, bookings []models.Booking) []scoredBooking {
	var out []scoredBooking
	for _, b := range bookings {
		if s := guestScore(query, b); s >= guestMatchThreshold {
			out = append(out, scoredBooking{booking: b, score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })
	return out
}
