package bundler

// output pairs a generated file name with the template that renders it.
type output struct {
	file     string
	template string
}

// definition is the shared implementation behind every variant; the four
// package-level values below are the whole closed set.
type definition struct {
	name        string
	outputs     []output
	common      []Dependency
	sass        []Dependency
	less        []Dependency
	scripts     map[string]string
	sources     bool
	importStyle bool
}

func (d *definition) Name() string { return d.name }

func (d *definition) ReferencesSources() bool { return d.sources }

func (d *definition) ImportsStyles() bool { return d.importStyle }

func (d *definition) ConfigFiles(data TemplateData) ([]File, error) {
	files := make([]File, 0, len(d.outputs))
	for _, o := range d.outputs {
		content, err := renderTemplate(o.template, data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: o.file, Content: content})
	}
	return files, nil
}

func (d *definition) Dependencies(family string) []Dependency {
	deps := append([]Dependency(nil), d.common...)
	if family == "less" {
		return append(deps, d.less...)
	}
	return append(deps, d.sass...)
}

func (d *definition) Scripts() map[string]string {
	out := make(map[string]string, len(d.scripts))
	for k, v := range d.scripts {
		out[k] = v
	}
	return out
}

var postcss = output{file: "postcss.config.js", template: "postcss.config.js.tmpl"}

var postcssDeps = []Dependency{
	{Name: "autoprefixer", Version: "^10.4.19"},
	{Name: "postcss", Version: "^8.4.38"},
}

var webpackVariant = &definition{
	name: Webpack,
	outputs: []output{
		{file: "webpack.config.js", template: "webpack.config.js.tmpl"},
		postcss,
	},
	common: append([]Dependency{
		{Name: "webpack", Version: "^5.91.0"},
		{Name: "webpack-cli", Version: "^5.1.4"},
		{Name: "css-loader", Version: "^7.1.1"},
		{Name: "postcss-loader", Version: "^8.1.1"},
		{Name: "mini-css-extract-plugin", Version: "^2.9.0"},
	}, postcssDeps...),
	sass: []Dependency{
		{Name: "sass", Version: "^1.77.0"},
		{Name: "sass-loader", Version: "^14.2.1"},
	},
	less: []Dependency{
		{Name: "less", Version: "^4.2.0"},
		{Name: "less-loader", Version: "^12.2.0"},
	},
	scripts: map[string]string{
		"dev":   "webpack --mode development --watch",
		"build": "webpack --mode production",
	},
	importStyle: true,
}

var gulpVariant = &definition{
	name: Gulp,
	outputs: []output{
		{file: "gulpfile.js", template: "gulpfile.js.tmpl"},
		postcss,
	},
	common: append([]Dependency{
		{Name: "gulp", Version: "^5.0.0"},
		{Name: "gulp-postcss", Version: "^10.0.0"},
		{Name: "gulp-rename", Version: "^2.0.0"},
	}, postcssDeps...),
	sass: []Dependency{
		{Name: "gulp-sass", Version: "^5.1.0"},
		{Name: "sass", Version: "^1.77.0"},
	},
	less: []Dependency{
		{Name: "gulp-less", Version: "^5.0.0"},
		{Name: "less", Version: "^4.2.0"},
	},
	scripts: map[string]string{
		"dev":   "gulp",
		"build": "gulp build",
	},
}

var gruntVariant = &definition{
	name: Grunt,
	outputs: []output{
		{file: "Gruntfile.js", template: "Gruntfile.js.tmpl"},
	},
	common: []Dependency{
		{Name: "grunt", Version: "^1.6.1"},
		{Name: "grunt-contrib-copy", Version: "^1.0.0"},
		{Name: "grunt-contrib-watch", Version: "^1.1.0"},
	},
	sass: []Dependency{
		{Name: "grunt-sass", Version: "^3.1.0"},
		{Name: "sass", Version: "^1.77.0"},
	},
	less: []Dependency{
		{Name: "grunt-contrib-less", Version: "^3.0.0"},
		{Name: "less", Version: "^4.2.0"},
	},
	scripts: map[string]string{
		"dev":   "grunt",
		"build": "grunt build",
	},
}

var parcelVariant = &definition{
	name: Parcel,
	outputs: []output{
		{file: ".parcelrc", template: "parcelrc.tmpl"},
		postcss,
	},
	common: append([]Dependency{
		{Name: "parcel", Version: "^2.12.0"},
	}, postcssDeps...),
	sass: []Dependency{
		{Name: "@parcel/transformer-sass", Version: "^2.12.0"},
		{Name: "sass", Version: "^1.77.0"},
	},
	less: []Dependency{
		{Name: "@parcel/transformer-less", Version: "^2.12.0"},
		{Name: "less", Version: "^4.2.0"},
	},
	scripts: map[string]string{
		"dev":   "parcel index.html",
		"build": "parcel build index.html --dist-dir build",
	},
	sources: true,
}
