// Package definition decodes YAML documents describing grids and forms and
// builds them through the cell and widget registries.
//
// A grid document:
//
//	title: Files
//	grid:
//	  id: files
//	  checkbox_columns: [pick]
//	  columns:
//	    - id: name
//	    - id: size
//	      renderer: byte
//
// A form document; keys other than type, id, children, grid and
// password_widget are widget properties:
//
//	form:
//	  id: signup
//	  action: /signup
//	  children:
//	    - type: form-field
//	      title: Password
//	      children:
//	        - {type: password, id: password, required: true}
//	    - type: confirm-password
//	      id: confirm
//	      password_widget: password
package definition
