package platform

import "strings"

// Platform 輸入 URL 的來源平台分類
type Platform string

const (
	TikTok    Platform = "tiktok"
	YouTube   Platform = "youtube"
	Instagram Platform = "instagram"
	Blog      Platform = "blog"
)

// 各平台的網域片段，比對採不分大小寫的子字串
var domainFragments = []struct {
	platform  Platform
	fragments []string
}{
	{TikTok, []string{"tiktok.com"}},
	{YouTube, []string{"youtube.com", "youtu.be"}},
	{Instagram, []string{"instagram.com", "instagr.am"}},
}

// Classify 將 URL 字串分類為平台標籤
// 純函數，任何輸入都會得到一個標籤，比不到已知影片平台一律視為 blog
func Classify(url string) Platform {
	lower := strings.ToLower(url)
	for _, entry := range domainFragments {
		for _, fragment := range entry.fragments {
			if strings.Contains(lower, fragment) {
				return entry.platform
			}
		}
	}
	return Blog
}

// IsVideo 判斷是否為短影片平台
func (p Platform) IsVideo() bool {
	return p == TikTok || p == YouTube || p == Instagram
}
