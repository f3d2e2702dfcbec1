package upstream

import "fmt"

// Endpoint paths of the portfolio API, relative to the configured base URL.
// Kept in one place so the request methods stay free of URL assembly.
const (
	epLogin          = "/api/auth/login"
	epChangePassword = "/api/auth/change-password"
	epForgotPassword = "/api/auth/forgot-password"
	epResetPassword  = "/api/auth/reset-password"

	epColleges       = "/api/admin/colleges"
	epUsers          = "/api/admin/users"
	epAddCollege     = "/api/admin/college"
	epAddLeadFaculty = "/api/admin/lead-faculty"
	epAddFaculty     = "/api/admin/faculty"
	epAddStudent     = "/api/admin/student"
	epAddAdmin       = "/api/admin/admin"

	epProfile = "/api/profile"
	epUpload  = "/api/upload"
	epReview  = "/api/faculty/review"
)

func epCollege(id string) string {
	return fmt.Sprintf("/api/admin/college/%s", id)
}

func epCollegeLead(id string) string {
	return fmt.Sprintf("/api/admin/college/%s/lead", id)
}

func epUser(id string) string {
	return fmt.Sprintf("/api/admin/user/%s", id)
}

func epUserLead(id string) string {
	return fmt.Sprintf("/api/admin/user/%s/lead", id)
}

func epStudent(id string) string {
	return fmt.Sprintf("/api/faculty/student/%s", id)
}

func epSection(path string) string {
	return fmt.Sprintf("/api/portfolio/%s", path)
}

func epSectionItem(path, id string) string {
	return fmt.Sprintf("/api/portfolio/%s/%s", path, id)
}
