package feeds

import "resumatch-engine/internal/domain"

// FallbackThreshold is the aggregated+deduped count below which the curated
// set is appended so callers never get a near-empty page on feed flakiness.
const FallbackThreshold = 30

// curated is read-only process-wide data; Curated hands out copies.
var curated = []domain.JobPosting{
	{Title: "Backend Engineer (Python/FastAPI)", Company: "NimbusCloud", Location: "Remote", URL: "https://jobs.example.com/nimbus-backend", Source: "Curated", Tags: []string{"python", "fastapi", "postgresql", "docker"}},
	{Title: "Fullstack Developer (React/Node)", Company: "AcmeTech", Location: "Remote", URL: "https://jobs.example.com/acme-fullstack", Source: "Curated", Tags: []string{"react", "nodejs", "typescript", "aws"}},
	{Title: "Data Scientist", Company: "Insight Labs", Location: "US", URL: "https://jobs.example.com/insight-ds", Source: "Curated", Tags: []string{"python", "pandas", "scikit-learn", "ml"}},
	{Title: "Machine Learning Engineer", Company: "VisionAI", Location: "EU", URL: "https://jobs.example.com/vision-ml", Source: "Curated", Tags: []string{"pytorch", "tensorflow", "mlops", "kubernetes"}},
	{Title: "DevOps Engineer", Company: "PipeOps", Location: "Remote", URL: "https://jobs.example.com/pipeops-devops", Source: "Curated", Tags: []string{"aws", "terraform", "kubernetes", "ci/cd"}},
	{Title: "Frontend Engineer (Next.js)", Company: "PixelCraft", Location: "Remote", URL: "https://jobs.example.com/pixel-frontend", Source: "Curated", Tags: []string{"react", "nextjs", "tailwind", "typescript"}},
	{Title: "Mobile Engineer (React Native)", Company: "MoveFast", Location: "Remote", URL: "https://jobs.example.com/movefast-mobile", Source: "Curated", Tags: []string{"react native", "typescript", "android", "ios"}},
	{Title: "Cloud Engineer", Company: "SkyScale", Location: "US", URL: "https://jobs.example.com/skyscale-cloud", Source: "Curated", Tags: []string{"aws", "gcp", "azure", "networking"}},
	{Title: "Security Engineer", Company: "ShieldSec", Location: "EU", URL: "https://jobs.example.com/shield-security", Source: "Curated", Tags: []string{"security", "siem", "sast", "owasp"}},
	{Title: "QA Automation Engineer", Company: "QualityWorks", Location: "Remote", URL: "https://jobs.example.com/qw-qa", Source: "Curated", Tags: []string{"cypress", "playwright", "jest", "selenium"}},
	{Title: "SRE", Company: "Reliant", Location: "Remote", URL: "https://jobs.example.com/reliant-sre", Source: "Curated", Tags: []string{"observability", "prometheus", "grafana", "k8s"}},
	{Title: "Data Engineer", Company: "DataForge", Location: "Remote", URL: "https://jobs.example.com/df-de", Source: "Curated", Tags: []string{"spark", "airflow", "python", "sql"}},
	{Title: "Platform Engineer", Company: "CoreStack", Location: "Remote", URL: "https://jobs.example.com/corestack-platform", Source: "Curated", Tags: []string{"platform", "kubernetes", "golang", "terraform"}},
	{Title: "AI Product Manager", Company: "NovaAI", Location: "Remote", URL: "https://jobs.example.com/novaai-pm", Source: "Curated", Tags: []string{"ai", "product", "nlp", "cv"}},
	{Title: "Backend Engineer (Go)", Company: "Streamly", Location: "Remote", URL: "https://jobs.example.com/streamly-go", Source: "Curated", Tags: []string{"golang", "grpc", "microservices", "docker"}},
	{Title: "Fullstack (Django/React)", Company: "GreenField", Location: "Remote", URL: "https://jobs.example.com/greenfield-fullstack", Source: "Curated", Tags: []string{"django", "react", "postgresql", "redis"}},
	{Title: "NLP Engineer", Company: "TextWorks", Location: "Remote", URL: "https://jobs.example.com/textworks-nlp", Source: "Curated", Tags: []string{"nlp", "transformers", "python", "ml"}},
	{Title: "Computer Vision Engineer", Company: "VisionWorks", Location: "Remote", URL: "https://jobs.example.com/visionworks-cv", Source: "Curated", Tags: []string{"opencv", "pytorch", "cv", "ml"}},
	{Title: "BI Analyst", Company: "Metricly", Location: "Remote", URL: "https://jobs.example.com/metricly-bi", Source: "Curated", Tags: []string{"sql", "tableau", "powerbi", "analytics"}},
	{Title: "Backend Engineer (Java/Spring)", Company: "EnterpriseSoft", Location: "US", URL: "https://jobs.example.com/enterprisesoft-java", Source: "Curated", Tags: []string{"java", "spring", "microservices", "kafka"}},
}

// Curated returns the static fallback postings. They carry the same shape as
// live postings so they flow through classification and scoring unchanged.
func Curated() []domain.JobPosting {
	out := make([]domain.JobPosting, len(curated))
	copy(out, curated)
	return out
}
