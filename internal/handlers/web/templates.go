package web

import (
	"fmt"
	"html/template"
	"time"
)

// parseTemplates builds the page template set
func parseTemplates() (*template.Template, error) {
	t := template.New("pages")
	for _, src := range []string{
		layoutTemplate,
		startPageTemplate,
		cluePageTemplate,
		outOfOrderTemplate,
		invalidCodeTemplate,
		finishedTemplate,
		leaderboardTemplate,
		adminLeaderboardTemplate,
		printQRTemplate,
		notFoundTemplate,
	} {
		if _, err := t.Parse(src); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// formatTime renders an elapsed duration the way the scoreboard shows
// it: "1h 2m 3s", "4m 5s", or "6s".
func formatTime(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	totalSeconds := int(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

const layoutTemplate = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 640px; margin: 2rem auto; padding: 0 1rem; color: #1c1c1c; }
h1 { font-size: 1.6rem; }
form div { margin-bottom: 0.75rem; }
input { width: 100%; padding: 0.6rem; font-size: 1rem; box-sizing: border-box; }
button { padding: 0.6rem 1.2rem; font-size: 1rem; cursor: pointer; }
ol { padding-left: 1.4rem; }
.clue-tag { display: inline-block; background: #1c1c1c; color: #fff; padding: 0.2rem 0.7rem; border-radius: 1rem; font-size: 0.85rem; }
.clue-completed-message { margin-top: 1rem; padding: 0.75rem; background: #fff6d6; border-radius: 0.5rem; }
.form-error { margin-bottom: 0.75rem; padding: 0.75rem; background: #ffe0e0; border-radius: 0.5rem; }
.leaderboard-highlight { font-weight: bold; }
.leaderboard-inprogress { color: #777; }
.qr-page { page-break-after: always; text-align: center; padding: 2rem 0; }
.qr-code { width: 300px; height: 300px; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.4rem 0.6rem; border-bottom: 1px solid #ddd; }
</style>
</head>
<body>{{end}}
{{define "foot"}}</body>
</html>{{end}}
{{define "leaderboard_list"}}
<ol>
{{range .Completed}}<li{{if and $.HighlightEmail (eq .Email $.HighlightEmail)}} class="leaderboard-highlight"{{end}}><span>{{.Name}}</span>: {{.Time}}</li>
{{end}}{{range .InProgress}}<li class="leaderboard-inprogress"><span>{{.Name}}</span>: In Progress</li>
{{end}}</ol>
{{if and (not .Completed) (not .InProgress)}}<p>No one has finished the race yet!</p>{{end}}
{{end}}`

const startPageTemplate = `
{{define "start_page"}}{{template "head" .}}
<h1>Welcome to the {{.Event.Title}}!</h1>
<p>{{.Event.Description}}</p>
{{if .Error}}<div class="form-error">{{.Error}}</div>{{end}}
<form action="/{{.Event.ID}}/start" method="post" id="race-form">
<div>
<input name="name" required placeholder="Team Name" id="team-name-input" autocomplete="off" data-team-names="{{.TeamNames}}">
</div>
<div>
<input name="email" type="email" required placeholder="Email">
</div>
<button type="submit" id="race-submit-btn">Start Race</button>
</form>
<h2>Leaderboard</h2>
{{template "leaderboard_list" .Board}}
{{template "foot"}}{{end}}`

const cluePageTemplate = `
{{define "clue_page"}}{{template "head" .}}
<div class="clue-tag">Clue {{.ClueNumber}}/{{.TotalClues}}</div>
<h1>{{.Clue}}</h1>
{{if .AlreadyRedeemed}}<div class="clue-completed-message">You've already completed this clue! Please continue to the next one.</div>{{end}}
{{template "foot"}}{{end}}`

const outOfOrderTemplate = `
{{define "out_of_order_page"}}{{template "head" .}}
<p>You must complete the clues in order! Please go back and complete the previous clue first.</p>
{{template "foot"}}{{end}}`

const invalidCodeTemplate = `
{{define "invalid_code_page"}}{{template "head" .}}
<p>Invalid QR code.</p>
{{template "foot"}}{{end}}`

const finishedTemplate = `
{{define "finished_page"}}{{template "head" .}}
<div class="clue-tag">Clue {{.ClueNumber}}/{{.TotalClues}}</div>
<h1>{{.Clue}}</h1>
<p>Congratulations! You finished the treasure hunt! Your time: <span>{{.Seconds}}</span> seconds.</p>
<h2>Leaderboard</h2>
{{template "leaderboard_list" .Board}}
{{template "foot"}}{{end}}`

const leaderboardTemplate = `
{{define "leaderboard_page"}}{{template "head" .}}
<h1>{{.Event.Title}} Leaderboard</h1>
{{template "leaderboard_list" .Board}}
<p><a href="/{{.Event.ID}}">Back to start</a></p>
{{template "foot"}}{{end}}`

const adminLeaderboardTemplate = `
{{define "admin_leaderboard_page"}}{{template "head" .}}
<h1>{{.Event.Title}} — Dashboard</h1>
<h2>Completed</h2>
{{if .Completed}}<table>
<tr><th>#</th><th>Team</th><th>Email</th><th>Best Time</th></tr>
{{range .Completed}}<tr><td>{{.Rank}}</td><td>{{.Name}}</td><td>{{.Email}}</td><td>{{.Time}}</td></tr>
{{end}}</table>{{else}}<p>No finishers yet.</p>{{end}}
<h2>In Progress</h2>
{{if .InProgress}}<table>
<tr><th>Team</th><th>Email</th><th>Current Clue</th></tr>
{{range .InProgress}}<tr><td>{{.Name}}</td><td>{{.Email}}</td><td>{{.CurrentClue}}</td></tr>
{{end}}</table>{{else}}<p>No teams on the course.</p>{{end}}
{{template "foot"}}{{end}}`

const printQRTemplate = `
{{define "print_qr_page"}}{{template "head" .}}
<h1>{{.Event.Title}} — QR Codes</h1>
{{range .Items}}<div class="qr-page">
<h2>Clue {{.ClueNumber}}</h2>
<img class="qr-code" src="{{.ImageURL}}" alt="QR code for clue {{.ClueNumber}}">
<p>{{.Link}}</p>
</div>
{{end}}
{{template "foot"}}{{end}}`

const notFoundTemplate = `
{{define "not_found_page"}}{{template "head" .}}
<p>Event '{{.EventID}}' not found.</p>
{{template "foot"}}{{end}}`
