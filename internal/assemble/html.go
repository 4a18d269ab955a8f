package assemble

import (
	"fmt"
	"time"
)

// WrapHTML embeds the converted document body in the full print stylesheet:
// document title, table-of-contents placeholder, content, generation-date
// footer. The ToC nav is structurally present but intentionally has no
// entries yet.
func WrapHTML(body string, generated time.Time) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Contract</title>
<link href="https://fonts.googleapis.com/css2?family=Roboto:wght@400;500;700&display=swap" rel="stylesheet">
<style>
  @page { margin: 2cm; }
  @page { @bottom-center { content: "Page " counter(page) " of " counter(pages); font-size: 10pt; color: #666; } }
  body { font-family: 'Roboto', sans-serif; color: #333; margin: 0; padding: 0; }
  .container { margin: 2cm; }
  h1 { text-align: center; font-size: 24pt; margin-bottom: 1em; border-bottom: 2px solid #ccc; padding-bottom: 0.2em; }
  h2 { font-size: 16pt; font-weight: 600; color: #2a3f54; margin-top: 1.5em; margin-bottom: 0.5em; border-bottom: 1px solid #eee; padding-bottom: 0.2em; }
  p { font-size: 12pt; line-height: 1.5; margin: 0.5em 0; text-align: justify; }
  section { margin-bottom: 1.5em; page-break-inside: avoid; }
  .clause { background: #f9f9f9; border-left: 4px solid #007acc; padding: 10px; margin: 1em 0; }
  .footer { text-align: center; margin-top: 2em; font-size: 10pt; color: #666; border-top: 1px solid #eee; padding-top: 0.5em; }
  nav.toc { page-break-after: always; margin-bottom: 2em; }
  nav.toc h2 { margin-bottom: 0.5em; }
  nav.toc ul { list-style: none; padding-left: 0; }
  nav.toc a { text-decoration: none; color: #1a0dab; }
</style>
</head>
<body>
  <div class="container">
    <h1>Contract Agreement</h1>
    <nav class="toc">
      <h2>Table of Contents</h2>
      <ul>
      </ul>
    </nav>
    %s
    <div class="footer">
      Generated by Accordo &ndash; %s
    </div>
  </div>
</body>
</html>`, body, generated.Format("1/2/2006"))
}
