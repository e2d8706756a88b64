package taxonomy

// Compiled-in taxonomy tables. These mirror the public archive/category
// definitions and change only with a new release of this service.

var archives = map[string]Archive{
	"astro-ph": {ID: "astro-ph", Name: "Astrophysics"},
	"cond-mat": {ID: "cond-mat", Name: "Condensed Matter"},
	"cs":       {ID: "cs", Name: "Computer Science"},
	"econ":     {ID: "econ", Name: "Economics"},
	"eess":     {ID: "eess", Name: "Electrical Engineering and Systems Science"},
	"gr-qc":    {ID: "gr-qc", Name: "General Relativity and Quantum Cosmology"},
	"hep-ex":   {ID: "hep-ex", Name: "High Energy Physics - Experiment"},
	"hep-lat":  {ID: "hep-lat", Name: "High Energy Physics - Lattice"},
	"hep-ph":   {ID: "hep-ph", Name: "High Energy Physics - Phenomenology"},
	"hep-th":   {ID: "hep-th", Name: "High Energy Physics - Theory"},
	"math":     {ID: "math", Name: "Mathematics"},
	"math-ph":  {ID: "math-ph", Name: "Mathematical Physics"},
	"nlin":     {ID: "nlin", Name: "Nonlinear Sciences"},
	"nucl-ex":  {ID: "nucl-ex", Name: "Nuclear Experiment"},
	"nucl-th":  {ID: "nucl-th", Name: "Nuclear Theory"},
	"physics":  {ID: "physics", Name: "Physics"},
	"q-bio":    {ID: "q-bio", Name: "Quantitative Biology"},
	"q-fin":    {ID: "q-fin", Name: "Quantitative Finance"},
	"quant-ph": {ID: "quant-ph", Name: "Quantum Physics"},
	"stat":     {ID: "stat", Name: "Statistics"},
}

var categories = map[string]Category{
	"astro-ph.CO": {ID: "astro-ph.CO", Name: "Cosmology and Nongalactic Astrophysics", InArchive: "astro-ph"},
	"astro-ph.EP": {ID: "astro-ph.EP", Name: "Earth and Planetary Astrophysics", InArchive: "astro-ph"},
	"astro-ph.GA": {ID: "astro-ph.GA", Name: "Astrophysics of Galaxies", InArchive: "astro-ph"},
	"astro-ph.HE": {ID: "astro-ph.HE", Name: "High Energy Astrophysical Phenomena", InArchive: "astro-ph"},
	"astro-ph.IM": {ID: "astro-ph.IM", Name: "Instrumentation and Methods for Astrophysics", InArchive: "astro-ph"},
	"astro-ph.SR": {ID: "astro-ph.SR", Name: "Solar and Stellar Astrophysics", InArchive: "astro-ph"},

	"cond-mat.dis-nn":    {ID: "cond-mat.dis-nn", Name: "Disordered Systems and Neural Networks", InArchive: "cond-mat"},
	"cond-mat.mes-hall":  {ID: "cond-mat.mes-hall", Name: "Mesoscale and Nanoscale Physics", InArchive: "cond-mat"},
	"cond-mat.mtrl-sci":  {ID: "cond-mat.mtrl-sci", Name: "Materials Science", InArchive: "cond-mat"},
	"cond-mat.other":     {ID: "cond-mat.other", Name: "Other Condensed Matter", InArchive: "cond-mat"},
	"cond-mat.quant-gas": {ID: "cond-mat.quant-gas", Name: "Quantum Gases", InArchive: "cond-mat"},
	"cond-mat.soft":      {ID: "cond-mat.soft", Name: "Soft Condensed Matter", InArchive: "cond-mat"},
	"cond-mat.stat-mech": {ID: "cond-mat.stat-mech", Name: "Statistical Mechanics", InArchive: "cond-mat"},
	"cond-mat.str-el":    {ID: "cond-mat.str-el", Name: "Strongly Correlated Electrons", InArchive: "cond-mat"},
	"cond-mat.supr-con":  {ID: "cond-mat.supr-con", Name: "Superconductivity", InArchive: "cond-mat"},

	"cs.AI": {ID: "cs.AI", Name: "Artificial Intelligence", InArchive: "cs"},
	"cs.AR": {ID: "cs.AR", Name: "Hardware Architecture", InArchive: "cs"},
	"cs.CC": {ID: "cs.CC", Name: "Computational Complexity", InArchive: "cs"},
	"cs.CE": {ID: "cs.CE", Name: "Computational Engineering, Finance, and Science", InArchive: "cs"},
	"cs.CG": {ID: "cs.CG", Name: "Computational Geometry", InArchive: "cs"},
	"cs.CL": {ID: "cs.CL", Name: "Computation and Language", InArchive: "cs"},
	"cs.CR": {ID: "cs.CR", Name: "Cryptography and Security", InArchive: "cs"},
	"cs.CV": {ID: "cs.CV", Name: "Computer Vision and Pattern Recognition", InArchive: "cs"},
	"cs.CY": {ID: "cs.CY", Name: "Computers and Society", InArchive: "cs"},
	"cs.DB": {ID: "cs.DB", Name: "Databases", InArchive: "cs"},
	"cs.DC": {ID: "cs.DC", Name: "Distributed, Parallel, and Cluster Computing", InArchive: "cs"},
	"cs.DL": {ID: "cs.DL", Name: "Digital Libraries", InArchive: "cs"},
	"cs.DM": {ID: "cs.DM", Name: "Discrete Mathematics", InArchive: "cs"},
	"cs.DS": {ID: "cs.DS", Name: "Data Structures and Algorithms", InArchive: "cs"},
	"cs.ET": {ID: "cs.ET", Name: "Emerging Technologies", InArchive: "cs"},
	"cs.FL": {ID: "cs.FL", Name: "Formal Languages and Automata Theory", InArchive: "cs"},
	"cs.GL": {ID: "cs.GL", Name: "General Literature", InArchive: "cs"},
	"cs.GR": {ID: "cs.GR", Name: "Graphics", InArchive: "cs"},
	"cs.GT": {ID: "cs.GT", Name: "Computer Science and Game Theory", InArchive: "cs"},
	"cs.HC": {ID: "cs.HC", Name: "Human-Computer Interaction", InArchive: "cs"},
	"cs.IR": {ID: "cs.IR", Name: "Information Retrieval", InArchive: "cs"},
	"cs.IT": {ID: "cs.IT", Name: "Information Theory", InArchive: "cs"},
	"cs.LG": {ID: "cs.LG", Name: "Machine Learning", InArchive: "cs"},
	"cs.LO": {ID: "cs.LO", Name: "Logic in Computer Science", InArchive: "cs"},
	"cs.MA": {ID: "cs.MA", Name: "Multiagent Systems", InArchive: "cs"},
	"cs.MM": {ID: "cs.MM", Name: "Multimedia", InArchive: "cs"},
	"cs.MS": {ID: "cs.MS", Name: "Mathematical Software", InArchive: "cs"},
	"cs.NA": {ID: "cs.NA", Name: "Numerical Analysis", InArchive: "cs"},
	"cs.NE": {ID: "cs.NE", Name: "Neural and Evolutionary Computing", InArchive: "cs"},
	"cs.NI": {ID: "cs.NI", Name: "Networking and Internet Architecture", InArchive: "cs"},
	"cs.OH": {ID: "cs.OH", Name: "Other Computer Science", InArchive: "cs"},
	"cs.OS": {ID: "cs.OS", Name: "Operating Systems", InArchive: "cs"},
	"cs.PF": {ID: "cs.PF", Name: "Performance", InArchive: "cs"},
	"cs.PL": {ID: "cs.PL", Name: "Programming Languages", InArchive: "cs"},
	"cs.RO": {ID: "cs.RO", Name: "Robotics", InArchive: "cs"},
	"cs.SC": {ID: "cs.SC", Name: "Symbolic Computation", InArchive: "cs"},
	"cs.SD": {ID: "cs.SD", Name: "Sound", InArchive: "cs"},
	"cs.SE": {ID: "cs.SE", Name: "Software Engineering", InArchive: "cs"},
	"cs.SI": {ID: "cs.SI", Name: "Social and Information Networks", InArchive: "cs"},
	"cs.SY": {ID: "cs.SY", Name: "Systems and Control", InArchive: "cs"},

	"econ.EM": {ID: "econ.EM", Name: "Econometrics", InArchive: "econ"},
	"econ.GN": {ID: "econ.GN", Name: "General Economics", InArchive: "econ"},
	"econ.TH": {ID: "econ.TH", Name: "Theoretical Economics", InArchive: "econ"},

	"eess.AS": {ID: "eess.AS", Name: "Audio and Speech Processing", InArchive: "eess"},
	"eess.IV": {ID: "eess.IV", Name: "Image and Video Processing", InArchive: "eess"},
	"eess.SP": {ID: "eess.SP", Name: "Signal Processing", InArchive: "eess"},
	"eess.SY": {ID: "eess.SY", Name: "Systems and Control", InArchive: "eess"},

	"math.AC": {ID: "math.AC", Name: "Commutative Algebra", InArchive: "math"},
	"math.AG": {ID: "math.AG", Name: "Algebraic Geometry", InArchive: "math"},
	"math.AP": {ID: "math.AP", Name: "Analysis of PDEs", InArchive: "math"},
	"math.AT": {ID: "math.AT", Name: "Algebraic Topology", InArchive: "math"},
	"math.CA": {ID: "math.CA", Name: "Classical Analysis and ODEs", InArchive: "math"},
	"math.CO": {ID: "math.CO", Name: "Combinatorics", InArchive: "math"},
	"math.CT": {ID: "math.CT", Name: "Category Theory", InArchive: "math"},
	"math.CV": {ID: "math.CV", Name: "Complex Variables", InArchive: "math"},
	"math.DG": {ID: "math.DG", Name: "Differential Geometry", InArchive: "math"},
	"math.DS": {ID: "math.DS", Name: "Dynamical Systems", InArchive: "math"},
	"math.FA": {ID: "math.FA", Name: "Functional Analysis", InArchive: "math"},
	"math.GM": {ID: "math.GM", Name: "General Mathematics", InArchive: "math"},
	"math.GN": {ID: "math.GN", Name: "General Topology", InArchive: "math"},
	"math.GR": {ID: "math.GR", Name: "Group Theory", InArchive: "math"},
	"math.GT": {ID: "math.GT", Name: "Geometric Topology", InArchive: "math"},
	"math.HO": {ID: "math.HO", Name: "History and Overview", InArchive: "math"},
	"math.IT": {ID: "math.IT", Name: "Information Theory", InArchive: "math"},
	"math.KT": {ID: "math.KT", Name: "K-Theory and Homology", InArchive: "math"},
	"math.LO": {ID: "math.LO", Name: "Logic", InArchive: "math"},
	"math.MG": {ID: "math.MG", Name: "Metric Geometry", InArchive: "math"},
	"math.MP": {ID: "math.MP", Name: "Mathematical Physics", InArchive: "math"},
	"math.NA": {ID: "math.NA", Name: "Numerical Analysis", InArchive: "math"},
	"math.NT": {ID: "math.NT", Name: "Number Theory", InArchive: "math"},
	"math.OA": {ID: "math.OA", Name: "Operator Algebras", InArchive: "math"},
	"math.OC": {ID: "math.OC", Name: "Optimization and Control", InArchive: "math"},
	"math.PR": {ID: "math.PR", Name: "Probability", InArchive: "math"},
	"math.QA": {ID: "math.QA", Name: "Quantum Algebra", InArchive: "math"},
	"math.RA": {ID: "math.RA", Name: "Rings and Algebras", InArchive: "math"},
	"math.RT": {ID: "math.RT", Name: "Representation Theory", InArchive: "math"},
	"math.SG": {ID: "math.SG", Name: "Symplectic Geometry", InArchive: "math"},
	"math.SP": {ID: "math.SP", Name: "Spectral Theory", InArchive: "math"},
	"math.ST": {ID: "math.ST", Name: "Statistics Theory", InArchive: "math"},

	"nlin.AO": {ID: "nlin.AO", Name: "Adaptation and Self-Organizing Systems", InArchive: "nlin"},
	"nlin.CD": {ID: "nlin.CD", Name: "Chaotic Dynamics", InArchive: "nlin"},
	"nlin.CG": {ID: "nlin.CG", Name: "Cellular Automata and Lattice Gases", InArchive: "nlin"},
	"nlin.PS": {ID: "nlin.PS", Name: "Pattern Formation and Solitons", InArchive: "nlin"},
	"nlin.SI": {ID: "nlin.SI", Name: "Exactly Solvable and Integrable Systems", InArchive: "nlin"},

	"physics.acc-ph":   {ID: "physics.acc-ph", Name: "Accelerator Physics", InArchive: "physics"},
	"physics.ao-ph":    {ID: "physics.ao-ph", Name: "Atmospheric and Oceanic Physics", InArchive: "physics"},
	"physics.app-ph":   {ID: "physics.app-ph", Name: "Applied Physics", InArchive: "physics"},
	"physics.atm-clus": {ID: "physics.atm-clus", Name: "Atomic and Molecular Clusters", InArchive: "physics"},
	"physics.atom-ph":  {ID: "physics.atom-ph", Name: "Atomic Physics", InArchive: "physics"},
	"physics.bio-ph":   {ID: "physics.bio-ph", Name: "Biological Physics", InArchive: "physics"},
	"physics.chem-ph":  {ID: "physics.chem-ph", Name: "Chemical Physics", InArchive: "physics"},
	"physics.class-ph": {ID: "physics.class-ph", Name: "Classical Physics", InArchive: "physics"},
	"physics.comp-ph":  {ID: "physics.comp-ph", Name: "Computational Physics", InArchive: "physics"},
	"physics.data-an":  {ID: "physics.data-an", Name: "Data Analysis, Statistics and Probability", InArchive: "physics"},
	"physics.ed-ph":    {ID: "physics.ed-ph", Name: "Physics Education", InArchive: "physics"},
	"physics.flu-dyn":  {ID: "physics.flu-dyn", Name: "Fluid Dynamics", InArchive: "physics"},
	"physics.gen-ph":   {ID: "physics.gen-ph", Name: "General Physics", InArchive: "physics"},
	"physics.geo-ph":   {ID: "physics.geo-ph", Name: "Geophysics", InArchive: "physics"},
	"physics.hist-ph":  {ID: "physics.hist-ph", Name: "History and Philosophy of Physics", InArchive: "physics"},
	"physics.ins-det":  {ID: "physics.ins-det", Name: "Instrumentation and Detectors", InArchive: "physics"},
	"physics.med-ph":   {ID: "physics.med-ph", Name: "Medical Physics", InArchive: "physics"},
	"physics.optics":   {ID: "physics.optics", Name: "Optics", InArchive: "physics"},
	"physics.plasm-ph": {ID: "physics.plasm-ph", Name: "Plasma Physics", InArchive: "physics"},
	"physics.pop-ph":   {ID: "physics.pop-ph", Name: "Popular Physics", InArchive: "physics"},
	"physics.soc-ph":   {ID: "physics.soc-ph", Name: "Physics and Society", InArchive: "physics"},
	"physics.space-ph": {ID: "physics.space-ph", Name: "Space Physics", InArchive: "physics"},

	"q-bio.BM": {ID: "q-bio.BM", Name: "Biomolecules", InArchive: "q-bio"},
	"q-bio.CB": {ID: "q-bio.CB", Name: "Cell Behavior", InArchive: "q-bio"},
	"q-bio.GN": {ID: "q-bio.GN", Name: "Genomics", InArchive: "q-bio"},
	"q-bio.MN": {ID: "q-bio.MN", Name: "Molecular Networks", InArchive: "q-bio"},
	"q-bio.NC": {ID: "q-bio.NC", Name: "Neurons and Cognition", InArchive: "q-bio"},
	"q-bio.OT": {ID: "q-bio.OT", Name: "Other Quantitative Biology", InArchive: "q-bio"},
	"q-bio.PE": {ID: "q-bio.PE", Name: "Populations and Evolution", InArchive: "q-bio"},
	"q-bio.QM": {ID: "q-bio.QM", Name: "Quantitative Methods", InArchive: "q-bio"},
	"q-bio.SC": {ID: "q-bio.SC", Name: "Subcellular Processes", InArchive: "q-bio"},
	"q-bio.TO": {ID: "q-bio.TO", Name: "Tissues and Organs", InArchive: "q-bio"},

	"q-fin.CP": {ID: "q-fin.CP", Name: "Computational Finance", InArchive: "q-fin"},
	"q-fin.EC": {ID: "q-fin.EC", Name: "Economics", InArchive: "q-fin"},
	"q-fin.GN": {ID: "q-fin.GN", Name: "General Finance", InArchive: "q-fin"},
	"q-fin.MF": {ID: "q-fin.MF", Name: "Mathematical Finance", InArchive: "q-fin"},
	"q-fin.PM": {ID: "q-fin.PM", Name: "Portfolio Management", InArchive: "q-fin"},
	"q-fin.PR": {ID: "q-fin.PR", Name: "Pricing of Securities", InArchive: "q-fin"},
	"q-fin.RM": {ID: "q-fin.RM", Name: "Risk Management", InArchive: "q-fin"},
	"q-fin.ST": {ID: "q-fin.ST", Name: "Statistical Finance", InArchive: "q-fin"},
	"q-fin.TR": {ID: "q-fin.TR", Name: "Trading and Market Microstructure", InArchive: "q-fin"},

	"stat.AP": {ID: "stat.AP", Name: "Applications", InArchive: "stat"},
	"stat.CO": {ID: "stat.CO", Name: "Computation", InArchive: "stat"},
	"stat.ME": {ID: "stat.ME", Name: "Methodology", InArchive: "stat"},
	"stat.ML": {ID: "stat.ML", Name: "Machine Learning", InArchive: "stat"},
	"stat.OT": {ID: "stat.OT", Name: "Other Statistics", InArchive: "stat"},
	"stat.TH": {ID: "stat.TH", Name: "Statistics Theory", InArchive: "stat"},

	// Archive-level categories: archives that announce papers without a
	// subject class, past or present.
	"astro-ph": {ID: "astro-ph", Name: "Astrophysics", InArchive: "astro-ph"},
	"gr-qc":    {ID: "gr-qc", Name: "General Relativity and Quantum Cosmology", InArchive: "gr-qc"},
	"hep-ex":   {ID: "hep-ex", Name: "High Energy Physics - Experiment", InArchive: "hep-ex"},
	"hep-lat":  {ID: "hep-lat", Name: "High Energy Physics - Lattice", InArchive: "hep-lat"},
	"hep-ph":   {ID: "hep-ph", Name: "High Energy Physics - Phenomenology", InArchive: "hep-ph"},
	"hep-th":   {ID: "hep-th", Name: "High Energy Physics - Theory", InArchive: "hep-th"},
	"math-ph":  {ID: "math-ph", Name: "Mathematical Physics", InArchive: "math-ph"},
	"nucl-ex":  {ID: "nucl-ex", Name: "Nuclear Experiment", InArchive: "nucl-ex"},
	"nucl-th":  {ID: "nucl-th", Name: "Nuclear Theory", InArchive: "nucl-th"},
	"quant-ph": {ID: "quant-ph", Name: "Quantum Physics", InArchive: "quant-ph"},
}

// categoryAliases are canonical pairs of identifiers naming the same
// category before and after a taxonomy rename. Lookups work in both
// directions.
var categoryAliases = [][2]string{
	{"math.MP", "math-ph"},
	{"stat.TH", "math.ST"},
	{"math.IT", "cs.IT"},
	{"q-fin.EC", "econ.GN"},
	{"cs.SY", "eess.SY"},
	{"cs.NA", "math.NA"},
}

// subsumedArchives maps a retired archive id to the current category
// that absorbed it. Events announced under the retired archive carry
// its old name in their category column.
var subsumedArchives = map[string]string{
	"acc-phys": "physics.acc-ph",
	"adap-org": "nlin.AO",
	"alg-geom": "math.AG",
	"ao-sci":   "physics.ao-ph",
	"atom-ph":  "physics.atom-ph",
	"bayes-an": "physics.data-an",
	"chao-dyn": "nlin.CD",
	"chem-ph":  "physics.chem-ph",
	"cmp-lg":   "cs.CL",
	"comp-gas": "nlin.CG",
	"dg-ga":    "math.DG",
	"funct-an": "math.FA",
	"mtrl-th":  "cond-mat.mtrl-sci",
	"patt-sol": "nlin.PS",
	"plasm-ph": "physics.plasm-ph",
	"q-alg":    "math.QA",
	"solv-int": "nlin.SI",
	"supr-con": "cond-mat.supr-con",
}
