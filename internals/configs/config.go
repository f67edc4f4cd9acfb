package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret         string
	AccessTokenTTLH   int
	VideosPerPage     int
	CommentsPerPage   int
	AdminPerPage      int
	MaxUploadSizeMB   int
	AllowedImageExts  []string
	MediaRewriteHosts []string

	AliyunAccessKeyID     string
	AliyunAccessKeySecret string
	AliyunVodRegion       string
	AliyunOSSEndpoint     string
	AliyunOSSBucket       string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AccessTokenTTLH = GetEnvInt("ACCESS_TOKEN_TTL_HOURS", 168) // 7 hari, mengikuti session lifetime lama
	VideosPerPage = GetEnvInt("VIDEOS_PER_PAGE", 12)
	CommentsPerPage = GetEnvInt("COMMENTS_PER_PAGE", 20)
	AdminPerPage = GetEnvInt("ADMIN_PER_PAGE", 20)
	MaxUploadSizeMB = GetEnvInt("MAX_UPLOAD_SIZE_MB", 16)
	AllowedImageExts = GetEnvList("ALLOWED_IMAGE_EXTENSIONS", "png,jpg,jpeg,gif,webp")
	MediaRewriteHosts = GetEnvList("MEDIA_REWRITE_HOSTS", "")

	AliyunAccessKeyID = GetEnv("ALIYUN_ACCESS_KEY_ID")
	AliyunAccessKeySecret = GetEnv("ALIYUN_ACCESS_KEY_SECRET")
	AliyunVodRegion = GetEnv("ALIYUN_VOD_REGION", "cn-shanghai")
	AliyunOSSEndpoint = GetEnv("ALIYUN_OSS_ENDPOINT")
	AliyunOSSBucket = GetEnv("ALIYUN_OSS_BUCKET")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// GetEnvList membaca env berisi daftar dipisah koma (kosong di-skip).
func GetEnvList(key, def string) []string {
	raw := GetEnv(key, def)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
