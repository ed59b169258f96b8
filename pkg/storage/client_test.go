package storage

import (
	"testing"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name       string
		bucketPath string
		fileName   string
		want       string
	}{
		{
			name:       "with bucket path",
			bucketPath: "avatars",
			fileName:   "me.png",
			want:       "avatars/me.png",
		},
		{
			name:       "empty bucket path",
			bucketPath: "",
			fileName:   "me.png",
			want:       "me.png",
		},
		{
			name:       "nested bucket path",
			bucketPath: "uploads/avatars",
			fileName:   "profile.jpg",
			want:       "uploads/avatars/profile.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{bucketPath: tt.bucketPath}
			if got := client.ObjectKey(tt.fileName); got != tt.want {
				t.Errorf("ObjectKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPublicURL(t *testing.T) {
	client := &Client{
		endpoint:   "https://storage.yandexcloud.net",
		bucketName: "forms",
	}

	got := client.PublicURL("avatars/me.png")
	want := "https://storage.yandexcloud.net/forms/avatars/me.png"
	if got != want {
		t.Errorf("PublicURL() = %v, want %v", got, want)
	}
}
