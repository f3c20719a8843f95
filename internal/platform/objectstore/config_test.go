package objectstore

import "testing"

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Endpoint:          "localhost:9000",
		AccessKey:         "a",
		SecretKey:         "b",
		Region:            "us-east-1",
		UseSSL:            false,
		BucketSubmissions: "submissions",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() err=%v", err)
	}

	invalid := valid
	invalid.Endpoint = "http://localhost:9000"
	if err := invalid.Validate(); err == nil {
		t.Fatalf("Validate() expected error for scheme in endpoint")
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("PROOF_MINIO_ENDPOINT", "minio.internal:9000")
	t.Setenv("PROOF_MINIO_BUCKET", "incoming")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() err=%v", err)
	}
	if cfg.Endpoint != "minio.internal:9000" {
		t.Fatalf("Endpoint=%q", cfg.Endpoint)
	}
	if cfg.BucketSubmissions != "incoming" {
		t.Fatalf("BucketSubmissions=%q", cfg.BucketSubmissions)
	}
}
