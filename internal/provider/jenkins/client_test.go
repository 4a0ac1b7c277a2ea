package jenkins

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const (
	testUser  = "admin"
	testToken = "11aa22bb"
)

// newTestClient 启动一个 mock Jenkins 并返回指向它的客户端
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", testUser, testToken, 5*time.Second)
}

func checkAuth(t *testing.T, r *http.Request) {
	t.Helper()
	user, pass, ok := r.BasicAuth()
	if !ok || user != testUser || pass != testToken {
		t.Errorf("basic auth = (%q, %q, %v), want (%q, %q, true)", user, pass, ok, testUser, testToken)
	}
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Basic ") {
		t.Errorf("Authorization header = %q, want Basic scheme", r.Header.Get("Authorization"))
	}
}

func TestJobPath(t *testing.T) {
	tests := []struct {
		name string
		job  string
		want string
	}{
		{"simple", "jenkins-demo", "/job/jenkins-demo"},
		{"folder", "team/app", "/job/team/job/app"},
		{"nested folder", "a/b/c", "/job/a/job/b/job/c"},
		{"leading and trailing slash", "/team/app/", "/job/team/job/app"},
		{"escaped segment", "my job", "/job/my%20job"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jobPath(tt.job); got != tt.want {
				t.Errorf("jobPath(%q) = %q, want %q", tt.job, got, tt.want)
			}
		})
	}
}

func TestClient_TriggerJob_WithParameters(t *testing.T) {
	params := map[string]string{"BRANCH_NAME": "master", "BUILD_TYPE": "release"}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		checkAuth(t, r)
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/job/demo/buildWithParameters" {
			t.Errorf("path = %s, want /job/demo/buildWithParameters", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}

		var got map[string]string
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(got) != len(params) || got["BRANCH_NAME"] != "master" || got["BUILD_TYPE"] != "release" {
			t.Errorf("body = %v, want %v", got, params)
		}

		w.Header().Set("Location", "http://jenkins/queue/item/42/")
		w.WriteHeader(http.StatusCreated)
	})

	result, err := c.TriggerJob(context.Background(), "demo", params)
	if err != nil {
		t.Fatalf("TriggerJob() error = %v", err)
	}
	if result.Job != "demo" {
		t.Errorf("Job = %q, want demo", result.Job)
	}
	if result.QueueURL != "http://jenkins/queue/item/42/" {
		t.Errorf("QueueURL = %q", result.QueueURL)
	}
}

func TestClient_TriggerJob_WithoutParameters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		checkAuth(t, r)
		if r.URL.Path != "/job/team/job/demo/build" {
			t.Errorf("path = %s, want /job/team/job/demo/build", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Errorf("body = %q, want empty", body)
		}
		w.WriteHeader(http.StatusOK)
	})

	result, err := c.TriggerJob(context.Background(), "team/demo", nil)
	if err != nil {
		t.Fatalf("TriggerJob() error = %v", err)
	}
	if result.QueueURL != "" {
		t.Errorf("QueueURL = %q, want empty", result.QueueURL)
	}
}

func TestClient_TriggerJob_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, "No valid crumb was included in the request")
	})

	_, err := c.TriggerJob(context.Background(), "demo", map[string]string{"A": "b"})
	if err == nil {
		t.Fatal("TriggerJob() error = nil, want APIError")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}
	want := "jenkins API returned status 403: No valid crumb was included in the request"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestClient_TriggerJob_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient(srv.URL, testUser, testToken, time.Second)
	_, err := c.TriggerJob(context.Background(), "demo", nil)
	if err == nil {
		t.Fatal("TriggerJob() error = nil, want ConnectionError")
	}

	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("error type = %T, want *ConnectionError", err)
	}
	if connErr.Op != "trigger job" {
		t.Errorf("Op = %q, want trigger job", connErr.Op)
	}
	if connErr.Unwrap() == nil {
		t.Error("Unwrap() = nil, want underlying cause")
	}
	if !strings.Contains(err.Error(), "connection error") {
		t.Errorf("Error() = %q, want it to mention connection error", err.Error())
	}
}

func TestClient_TriggerJob_EmptyName(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", testUser, testToken, time.Second)
	if _, err := c.TriggerJob(context.Background(), "", nil); !errors.Is(err, errJobNameRequired) {
		t.Errorf("TriggerJob(\"\") error = %v, want errJobNameRequired", err)
	}
}

func TestClient_GetJobStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		checkAuth(t, r)
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/job/demo/api/json" {
			t.Errorf("path = %s, want /job/demo/api/json", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"_class": "hudson.model.FreeStyleProject",
			"name": "demo",
			"buildable": true,
			"lastBuild": {"number": 17, "url": "http://jenkins/job/demo/17/"}
		}`)
	})

	status, err := c.GetJobStatus(context.Background(), "demo")
	if err != nil {
		t.Fatalf("GetJobStatus() error = %v", err)
	}
	if status.Name == nil || *status.Name != "demo" {
		t.Errorf("Name = %v, want demo", status.Name)
	}
	if status.Buildable == nil || !*status.Buildable {
		t.Errorf("Buildable = %v, want true", status.Buildable)
	}
	if status.LastBuild == nil || status.LastBuild.Number == nil || *status.LastBuild.Number != 17 {
		t.Fatalf("LastBuild = %+v, want number 17", status.LastBuild)
	}
	if status.LastBuild.URL == nil || *status.LastBuild.URL != "http://jenkins/job/demo/17/" {
		t.Errorf("LastBuild.URL = %v", status.LastBuild.URL)
	}
}

func TestClient_GetJobStatus_MissingFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"name": "never-built", "lastBuild": null}`)
	})

	status, err := c.GetJobStatus(context.Background(), "never-built")
	if err != nil {
		t.Fatalf("GetJobStatus() error = %v", err)
	}
	if status.Buildable != nil {
		t.Errorf("Buildable = %v, want nil", *status.Buildable)
	}
	if status.LastBuild != nil {
		t.Errorf("LastBuild = %+v, want nil", status.LastBuild)
	}
}

func TestClient_GetJobStatus_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "not found",
			status: http.StatusNotFound,
			body:   "<html>Not Found</html>",
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
					t.Fatalf("error = %v, want APIError 404", err)
				}
				if err.Error() != "jenkins API returned status 404" {
					t.Errorf("Error() = %q", err.Error())
				}
			},
		},
		{
			name:   "invalid json",
			status: http.StatusOK,
			body:   "<html>login</html>",
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrDecode) {
					t.Errorf("error = %v, want ErrDecode", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.GetJobStatus(context.Background(), "missing-job")
			if err == nil {
				t.Fatal("GetJobStatus() error = nil")
			}
			tt.check(t, err)
		})
	}
}
