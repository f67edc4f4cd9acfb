// internals/features/vod/service/vod_client.go
package service

import (
	"errors"

	"github.com/aliyun/alibaba-cloud-sdk-go/services/vod"

	"videoku_backend/internals/configs"
)

var ErrNotConfigured = errors.New("Aliyun VOD belum dikonfigurasi (access key kosong)")

// PlayAuth adalah kredensial playback berumur pendek dari Aliyun VOD.
// Tidak di-cache: setiap sesi playback fetch ulang.
type PlayAuth struct {
	VodVideoID string `json:"vod_video_id"`
	PlayAuth   string `json:"play_auth"`
	Title      string `json:"title,omitempty"`
	CoverURL   string `json:"cover_url,omitempty"`
}

// GetPlayAuth menukar ID video VOD menjadi token play-auth. Tanpa retry:
// kegagalan provider langsung diteruskan ke pemanggil.
func GetPlayAuth(vodVideoID string) (*PlayAuth, error) {
	if configs.AliyunAccessKeyID == "" || configs.AliyunAccessKeySecret == "" {
		return nil, ErrNotConfigured
	}

	client, err := vod.NewClientWithAccessKey(
		configs.AliyunVodRegion,
		configs.AliyunAccessKeyID,
		configs.AliyunAccessKeySecret,
	)
	if err != nil {
		return nil, err
	}

	req := vod.CreateGetVideoPlayAuthRequest()
	req.VideoId = vodVideoID
	req.AcceptFormat = "JSON"

	resp, err := client.GetVideoPlayAuth(req)
	if err != nil {
		return nil, err
	}

	return &PlayAuth{
		VodVideoID: vodVideoID,
		PlayAuth:   resp.PlayAuth,
		Title:      resp.VideoMeta.Title,
		CoverURL:   resp.VideoMeta.CoverURL,
	}, nil
}
