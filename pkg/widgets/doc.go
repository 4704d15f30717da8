// Package widgets renders server-side form controls: entries, form fields,
// flydowns and radio lists, content blocks, notebooks and replicable
// containers.
//
// Every widget implements templ.Component and writes nothing while invisible.
// CSS classes are composed by explicit per-type builders: a specialised widget
// asks its base for the base ClassList and prepends its own classes, so
//
//	NewPhoneEntry("phone").ClassNames() // swat-phone-entry swat-entry
//
// Widgets that read submitted values implement Processor. Validation problems
// are recorded as Messages on the widget; configuration mistakes are returned
// as *render.ConfigError.
package widgets
