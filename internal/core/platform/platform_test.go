package platform

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Platform
	}{
		{
			name: "tiktok video",
			url:  "https://www.tiktok.com/@cook/video/7283945610",
			want: TikTok,
		},
		{
			name: "tiktok uppercase host",
			url:  "https://WWW.TIKTOK.COM/@cook/video/1",
			want: TikTok,
		},
		{
			name: "youtube watch",
			url:  "https://www.youtube.com/watch?v=abc123",
			want: YouTube,
		},
		{
			name: "youtube short link",
			url:  "https://youtu.be/abc123",
			want: YouTube,
		},
		{
			name: "instagram reel",
			url:  "https://www.instagram.com/reel/Cx1/",
			want: Instagram,
		},
		{
			name: "instagram short domain",
			url:  "https://instagr.am/p/Cx1/",
			want: Instagram,
		},
		{
			name: "recipe blog",
			url:  "https://www.seriouseats.com/perfect-pasta",
			want: Blog,
		},
		{
			name: "arbitrary string",
			url:  "not a url at all",
			want: Blog,
		},
		{
			name: "empty",
			url:  "",
			want: Blog,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.url)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsVideo(t *testing.T) {
	if !TikTok.IsVideo() || !YouTube.IsVideo() || !Instagram.IsVideo() {
		t.Error("video platforms should report IsVideo")
	}
	if Blog.IsVideo() {
		t.Error("blog should not report IsVideo")
	}
}
