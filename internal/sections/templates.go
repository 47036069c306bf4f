package sections

// sectionTemplates holds one named template per card variant and sub-block.
const sectionTemplates = `
{{define "stat-row"}}{{range .}}
<div class="flex-1 min-w-[80px]">
  <div class="text-[10px] uppercase tracking-widest font-bold text-black/50 mb-1">{{.Label}}</div>
  <div class="font-manrope font-black text-2xl {{.ValueClass}}">{{.Value}}</div>
</div>
{{if .Divider}}<div class="hidden md:block w-px h-12 bg-black/20"></div>{{end}}
{{end}}{{end}}

{{define "work-grid"}}{{range .}}
<div class="group relative bg-white border-2 border-black/10 hover:border-black transition-all duration-300 hover:shadow-[8px_8px_0px_0px_rgba(0,0,0,1)] overflow-hidden">
  <div class="absolute top-0 left-0 w-full h-1 {{.Accent}}"></div>
  <div class="p-8 h-full flex flex-col">
    <div class="flex justify-between items-start mb-6">
      <div>
        <span class="inline-block {{.Accent}} text-white text-xs font-manrope font-bold px-2 py-1 uppercase tracking-wider rounded-md">{{.Severity}}</span>
        <div class="text-xs font-manrope text-gray-400 mt-2">{{.CVE}}</div>
      </div>
      <div class="text-right">
        <div class="text-xs font-manrope text-gray-400 mb-1">YEAR</div>
        <div class="font-manrope text-sm font-bold text-black">{{.Year}}</div>
      </div>
    </div>
    <div class="mb-auto">
      <h3 class="text-2xl md:text-3xl font-bold leading-tight mb-3 font-manrope group-hover:underline decoration-2 underline-offset-4">{{.Title}}</h3>
      <p class="text-gray-600 leading-relaxed mb-6">{{.Description}}</p>
    </div>
    <div class="border-t border-black/10 pt-6">
      <div class="flex items-center justify-between flex-wrap gap-4 mb-4">{{template "stat-row" .Stats}}</div>
      {{if .Link}}<a href="{{.Link.URL}}" class="inline-flex items-center gap-2 text-sm font-manrope font-bold text-black hover:underline group/link">
        <i data-lucide="{{.LinkIcon}}" class="w-4 h-4"></i>
        {{.Link.Text}}
      </a>{{end}}
    </div>
  </div>
</div>
{{end}}{{end}}

{{define "experience-current"}}
<div class="group relative bg-white border-2 border-black transition-all duration-300 hover:shadow-[8px_8px_0px_0px_rgba(0,0,0,1)] md:col-span-2 overflow-hidden">
  <div class="absolute top-0 left-0 w-full h-2 bg-black"></div>
  <div class="relative p-6 md:p-10 lg:p-12">
    <div class="inline-flex items-center gap-2 px-3 py-1.5 bg-black text-white rounded-md mb-6">
      <div class="w-1.5 h-1.5 bg-green-400 rounded-full"></div>
      <span class="text-[10px] font-manrope font-bold tracking-widest uppercase">Current Position</span>
    </div>
    <div class="mb-8">
      <h3 class="text-3xl md:text-4xl lg:text-5xl font-black leading-tight font-manrope mb-4 text-black">{{.Role}}</h3>
      <p class="text-black/70 leading-relaxed mb-6 text-sm md:text-base max-w-3xl">{{.Description}}</p>
      <div class="flex flex-wrap items-center gap-3 mb-6">
        <div class="flex items-center gap-2 px-4 py-2 bg-black text-white rounded-md">
          <i data-lucide="calendar" class="w-3.5 h-3.5"></i>
          <span class="text-xs font-manrope font-bold">{{.Duration}}</span>
        </div>
        <div class="flex items-center gap-2 px-4 py-2 border-2 border-black rounded-md">
          <i data-lucide="clock" class="w-3.5 h-3.5 text-black"></i>
          <span class="text-xs font-manrope font-bold text-black">{{.DurationLabel}}</span>
        </div>
      </div>
      {{if .Tags}}<div class="grid grid-cols-2 gap-3">{{range .Tags}}
        <div class="flex items-center gap-2 text-xs md:text-sm text-black/70 font-medium">
          <div class="w-1.5 h-1.5 bg-black"></div>
          <span>{{.}}</span>
        </div>{{end}}
      </div>{{end}}
    </div>
    {{if .Stats}}<div class="pt-6 border-t-2 border-black/10">
      <div class="flex items-center justify-between flex-wrap gap-6 md:gap-8">{{range .Stats}}
        <div class="flex-1 min-w-[120px]">
          <div class="text-[10px] md:text-xs uppercase tracking-widest font-bold text-black/50 mb-2">{{.Label}}</div>
          <div class="font-manrope font-black text-4xl md:text-5xl text-black">{{.Value}}</div>
        </div>
        {{if .Divider}}<div class="hidden md:block w-px h-16 bg-black/20"></div>{{end}}{{end}}
      </div>
    </div>{{end}}
  </div>
</div>
{{end}}

{{define "experience-community"}}
<div class="group relative bg-gradient-to-br from-gray-50 to-white border-2 border-black/10 hover:border-black transition-all duration-300 hover:shadow-[8px_8px_0px_0px_rgba(0,0,0,1)] md:col-span-2 overflow-hidden">
  <div class="absolute top-0 right-0 w-40 h-40 bg-gradient-to-br from-purple-100 to-transparent opacity-50 rounded-full blur-3xl"></div>
  <div class="relative p-8 md:p-10">
    <div class="flex flex-col md:flex-row gap-8 items-start md:items-center justify-between mb-8">
      <div class="flex items-center gap-4">
        <div class="w-14 h-14 bg-purple-500 text-white flex items-center justify-center rounded-xl shadow-lg">
          <i data-lucide="{{.Icon}}" class="w-7 h-7"></i>
        </div>
        <div>
          <h3 class="text-2xl md:text-3xl font-bold leading-tight font-manrope">{{.Role}}</h3>
          <p class="text-sm text-gray-500 font-manrope mt-1 flex items-center gap-2">
            <i data-lucide="users" class="w-3.5 h-3.5 text-purple-500"></i>
            {{.Subtitle}}
          </p>
        </div>
      </div>
      {{with .Link}}<a href="{{.URL}}" class="inline-flex items-center gap-2 px-4 py-2 bg-black text-white text-sm font-bold uppercase tracking-wider hover:bg-gray-800 transition-all rounded-lg group/btn border-2 border-black">
        {{.Text}}
        <i data-lucide="arrow-right" class="w-4 h-4 transform group-hover/btn:translate-x-1 transition-transform"></i>
      </a>{{end}}
    </div>
    {{if .Items}}<div class="grid grid-cols-1 md:grid-cols-3 gap-6 pt-8 border-t-2 border-black/10">{{range .Items}}
      <div class="group/item p-5 bg-white border-2 border-black/5 rounded-lg hover:border-purple-200 hover:shadow-md transition-all">
        <div class="flex items-center gap-2 mb-2">
          <i data-lucide="{{.Icon}}" class="w-5 h-5 text-purple-500"></i>
          <div class="font-bold text-black text-lg font-manrope">{{.Title}}</div>
        </div>
        <div class="text-sm text-gray-600 font-manrope leading-relaxed">{{.Description}}</div>
      </div>{{end}}
    </div>{{end}}
  </div>
</div>
{{end}}

{{define "experience-standard"}}
<div class="group relative bg-white border-2 border-black/10 hover:border-black transition-all duration-300 hover:shadow-[8px_8px_0px_0px_rgba(0,0,0,1)] overflow-hidden">
  <div class="absolute top-0 left-0 w-full h-1 bg-gradient-to-r {{.Colors.Gradient}}"></div>
  <div class="p-8 h-full flex flex-col">
    <div class="flex justify-between items-start mb-8">
      <div class="flex items-center gap-3">
        <div class="w-10 h-10 {{.Colors.IconBg}} text-white flex items-center justify-center rounded-lg">
          <i data-lucide="{{.Icon}}" class="w-5 h-5"></i>
        </div>
        <div>
          <span class="inline-block {{.Colors.Badge}} text-xs font-manrope font-bold px-2 py-1 uppercase tracking-wider rounded-md">{{.Badge}}</span>
          <div class="text-xs font-manrope text-gray-400 mt-1 uppercase">{{.CompanyShort}}</div>
        </div>
      </div>
      <div class="text-right">
        <div class="text-xs font-manrope text-gray-400 mb-1">DURATION</div>
        <div class="font-manrope text-sm font-bold text-black">{{.Duration}}</div>
      </div>
    </div>
    <div class="mb-auto">
      <h3 class="text-2xl md:text-3xl font-bold leading-tight mb-3 font-manrope group-hover:underline decoration-2 underline-offset-4">{{.Role}}</h3>
      <p class="text-sm font-bold text-gray-500 mb-4 uppercase tracking-wider flex items-center gap-2">
        <i data-lucide="building-2" class="w-3.5 h-3.5 {{.Colors.IconColor}}"></i>
        {{.Company}}
      </p>
      <p class="text-gray-600 leading-relaxed mb-6">{{.Description}}</p>
    </div>
    {{if .Highlights}}<div class="border-t border-black/10 pt-6">
      <div class="space-y-2.5">{{range .Highlights}}
        <div class="flex items-center gap-2.5 text-sm font-manrope text-gray-700 group/item hover:text-black transition-colors">
          <div class="w-1.5 h-1.5 {{$.Colors.IconBg}} rounded-full group-hover/item:scale-125 transition-transform"></div>
          <span>{{.}}</span>
        </div>{{end}}
      </div>
    </div>{{end}}
    {{if .Certs}}<div class="border-t border-black/10 pt-6">
      <div class="text-xs font-manrope text-gray-400 uppercase tracking-wider mb-3">Certifications</div>
      <div class="flex flex-wrap gap-2">{{range .Certs}}
        <span class="px-2.5 py-1.5 bg-gray-50 text-xs font-manrope font-bold uppercase tracking-wider border-2 border-gray-200 hover:border-black hover:bg-gray-100 transition-all rounded-md">{{.}}</span>{{end}}
      </div>
    </div>{{end}}
  </div>
</div>
{{end}}

{{define "services-description"}}
<p class="text-lg leading-relaxed text-black/70">{{.Main}}</p>
<p class="text-sm leading-relaxed text-black/50 md:text-right font-manrope">{{range .TrustedBy}}{{.}}<br>{{end}}</p>
{{end}}

{{define "service-featured"}}
<div class="group relative bg-black text-white border-2 border-black transition-all duration-500 hover:shadow-[12px_12px_0px_0px_rgba(34,197,94,0.4)] p-8 md:col-span-2 lg:col-span-1 lg:row-span-2">
  <div class="absolute top-0 right-0 px-3 py-1 bg-green-500 text-black text-xs font-bold uppercase tracking-wider">FEATURED</div>
  <div class="flex flex-col h-full">
    <div class="flex items-start justify-between mb-8">
      <div class="service-icon-featured">
        <i data-lucide="{{.Icon}}" class="w-10 h-10 text-green-400"></i>
      </div>
      <span class="text-xs font-manrope font-bold uppercase tracking-wider text-green-400">★ {{.ID}}</span>
    </div>
    <h3 class="text-3xl md:text-4xl font-bold mb-4 font-manrope leading-tight">{{.Title}}</h3>
    <p class="text-white/70 leading-relaxed mb-6 flex-1">{{.Description}}</p>
    <div class="space-y-3 mb-6">{{range .Tags}}
      <div class="flex items-center gap-2 text-sm">
        <div class="w-1.5 h-1.5 bg-green-400 rounded-full"></div>
        <span class="text-white/80">{{.Text}}</span>
      </div>{{end}}
    </div>
    {{with .Certification}}<div class="pt-4 border-t border-white/20">
      <div class="inline-flex items-center gap-2 px-3 py-1.5 bg-green-500/20 border border-green-500/40 rounded-full">
        <i data-lucide="shield-check" class="w-3.5 h-3.5 text-green-400"></i>
        <span class="text-xs font-manrope font-bold text-green-400">{{.}}</span>
      </div>
    </div>{{end}}
  </div>
</div>
{{end}}

{{define "service-standard"}}
<div class="group relative bg-white border-2 border-black/10 hover:border-black transition-all duration-300 hover:shadow-[8px_8px_0px_0px_rgba(0,0,0,1)] p-8 overflow-hidden">
  <div class="absolute top-0 right-0 w-32 h-32 bg-gradient-to-br from-green-100 to-transparent opacity-0 group-hover:opacity-100 transition-opacity -mr-16 -mt-16 rounded-full"></div>
  <div class="relative">
    <div class="flex items-start justify-between mb-6">
      <div class="service-icon-standard">
        <i data-lucide="{{.Icon}}" class="w-7 h-7 text-black"></i>
      </div>
      <span class="text-xs font-manrope font-bold uppercase tracking-wider text-black/40">{{.ID}}</span>
    </div>
    <h3 class="text-2xl font-bold mb-3 font-manrope">{{.Title}}</h3>
    <p class="text-black/60 leading-relaxed mb-6 text-sm">{{.Description}}</p>
    <div class="flex flex-wrap gap-2">{{range .Tags}}
      {{if .First}}<span class="text-xs font-manrope font-bold px-2 py-1 bg-black text-white rounded-md">{{.Text}}</span>{{else}}<span class="text-xs font-manrope font-bold px-2 py-1 border border-black/20 rounded-md">{{.Text}}</span>{{end}}{{end}}
    </div>
  </div>
</div>
{{end}}

{{define "cta-button"}}
<a href="{{.Button.Link}}" class="w-full sm:w-auto group relative inline-flex items-center justify-center gap-2 px-6 md:px-8 py-3 md:py-4 border-2 font-bold text-xs md:text-sm uppercase tracking-wider transition-all duration-300 {{.Class}}">
  <span>{{.Button.Text}}</span>
  {{with .Button.Icon}}<i data-lucide="{{.}}" class="w-4 h-4 md:w-5 md:h-5 transition-transform group-hover:translate-x-1"></i>{{end}}
</a>
{{end}}

{{define "services-cta"}}
<div class="mt-16 border-4 {{.Colors.Container}} p-6 md:p-10 relative overflow-hidden">
  <video id="services-cta-video" class="absolute inset-0 w-full h-full object-cover"{{if .Video.Autoplay}} autoplay{{end}}{{if .Video.Muted}} muted{{end}}{{if .Video.Loop}} loop{{end}} playsinline>
    {{if .Video.Enabled}}<source src="{{.Video.Src}}" type="video/mp4">{{end}}
  </video>
  <div id="services-cta-overlay" class="absolute inset-0" style="{{.OverlayStyle}}"></div>
  <div class="absolute w-4 h-4 md:w-6 md:h-6 {{.Colors.Corner}} z-10 top-0 left-0"></div>
  <div class="absolute w-4 h-4 md:w-6 md:h-6 {{.Colors.Corner}} z-10 top-0 right-0"></div>
  <div class="absolute w-4 h-4 md:w-6 md:h-6 {{.Colors.Corner}} z-10 bottom-0 left-0"></div>
  <div class="absolute w-4 h-4 md:w-6 md:h-6 {{.Colors.Corner}} z-10 bottom-0 right-0"></div>
  <div class="text-center max-w-2xl mx-auto relative z-10">
    {{with .Badge}}<div class="inline-block mb-4 md:mb-6">
      <div class="flex items-center gap-2 px-3 py-1.5 md:px-4 md:py-2 border-2 {{$.Colors.BadgeBorder}}">
        <div class="w-1.5 h-1.5 md:w-2 md:h-2 bg-green-500 rounded-full animate-pulse"></div>
        <span class="text-xs md:text-sm font-manrope font-bold uppercase tracking-wider">{{.}}</span>
      </div>
    </div>{{end}}
    <h3 class="text-3xl md:text-5xl lg:text-6xl font-bold mb-4 md:mb-6 font-manrope leading-tight">{{.Title}}</h3>
    <p class="text-sm md:text-base lg:text-lg {{.Colors.Desc}} mb-6 md:mb-8 leading-relaxed px-4 md:px-0">{{.Description}}</p>
    {{if .Primary}}<div class="flex flex-col sm:flex-row gap-3 md:gap-4 justify-center items-center mb-6 md:mb-8">
      {{template "cta-button" (button .Primary .Colors.Primary)}}
      {{with .Secondary}}{{template "cta-button" (button . $.Colors.Secondary)}}{{end}}
    </div>{{end}}
    {{if .TrustIndicators}}<div class="pt-4 md:pt-6 border-t {{.Colors.Divider}}">
      <div class="flex flex-col md:flex-row md:flex-nowrap justify-start md:justify-center gap-2 md:gap-6 text-xs md:text-sm font-manrope font-bold uppercase tracking-wider {{.Colors.Trust}}">{{range .TrustIndicators}}
        <div class="flex items-center gap-2 whitespace-nowrap">
          <div class="w-1.5 h-1.5 md:w-2 md:h-2 {{$.Colors.Dot}} rounded-full"></div>
          <span>{{.}}</span>
        </div>{{end}}
      </div>
    </div>{{end}}
  </div>
</div>
{{end}}

{{define "about-description"}}
<div class="about-prose space-y-4 text-lg leading-relaxed text-black/70">{{.}}</div>
{{end}}

{{define "about-stats"}}{{range .}}
<div class="stat-item border-2 border-black p-6">
  {{with .Icon}}<i data-lucide="{{.}}" class="w-6 h-6 mb-3 text-black"></i>{{end}}
  <div class="font-manrope font-black text-4xl md:text-5xl text-black">
    <span class="stat-counter" data-target="{{.Target}}" data-prefix="{{.Prefix}}" data-suffix="{{.Suffix}}">0</span>
  </div>
  <div class="text-xs uppercase tracking-widest font-bold text-black/50 mt-2">{{.Label}}</div>
</div>
{{end}}{{end}}

{{define "about-skills"}}{{range .}}
<div class="skill-bar-item mb-5">
  <div class="flex justify-between items-center mb-2">
    <span class="text-sm font-manrope font-bold uppercase tracking-wider">{{.Name}}</span>
    <span class="skill-percentage text-sm font-manrope font-bold">0%</span>
  </div>
  <div class="h-2 w-full bg-black/10 overflow-hidden">
    <div class="skill-bar h-full bg-black" data-width="{{.Width}}" style="width: 0%"></div>
  </div>
</div>
{{end}}{{end}}

{{define "about-arsenal"}}{{range .}}
<div class="arsenal-group mb-6">
  <div class="flex items-center gap-2 mb-3">
    {{with .Icon}}<i data-lucide="{{.}}" class="w-4 h-4 text-black"></i>{{end}}
    <h4 class="text-xs font-manrope font-bold uppercase tracking-widest text-black/60">{{.Category}}</h4>
  </div>
  <div class="flex flex-wrap gap-2">{{range .Items}}
    <span class="px-3 py-1.5 border-2 border-black text-xs font-manrope font-bold uppercase tracking-wider">{{.}}</span>{{end}}
  </div>
</div>
{{end}}{{end}}
`
