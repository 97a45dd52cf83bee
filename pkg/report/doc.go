// Package report groups verification findings per key type and locale and
// renders them as plain text, JSON or a Markdown summary.
//
//	rep := report.New()
//	findings, err := v.VerifyAllLocales(ctx)
//	if err != nil {
//		rep.AddError(v.TypeName(), err)
//	} else {
//		rep.AddType(v.TypeName(), locales, report.Filter(findings, ignored...))
//	}
//	err = report.Render(os.Stdout, rep, report.FormatMarkdown)
package report
