package simulate

import "github.com/bryanwahyu/authentiscan/internal/domain/verification"

// Canned verdicts used by the simulated code-scan path, covering varied
// product categories. Picked uniformly once the genuine/counterfeit coin
// flip has landed.

var genuinePool = []verification.Result{
	{
		IsGenuine:       true,
		ConfidenceScore: 97,
		ImageAnalysis: verification.AnalysisDetail{
			Title:       "Pristine Visuals",
			Description: "Logo is crisp with sharp edges and correctly placed. Packaging colors are vibrant and match official branding Pantone codes. High-resolution printing shows no pixelation or smudges.",
			IsPositive:  true,
		},
		BarcodeAnalysis: verification.AnalysisDetail{
			Title:       "Barcode Verified",
			Description: "Scanned barcode matches the registered product in our database (Product ID: 850041-B).",
			IsPositive:  true,
		},
		TextAnalysis: verification.AnalysisDetail{
			Title:       "Text & Fonts Match",
			Description: "All text, including ingredients and manufacturer details, uses the correct font and is free of spelling mistakes.",
			IsPositive:  true,
		},
	},
	{
		IsGenuine:       true,
		ConfidenceScore: 99,
		ImageAnalysis: verification.AnalysisDetail{
			Title:       "Authentic Electronics Packaging",
			Description: "Holographic security seal is intact and displays a multi-layered 3D effect when tilted. The matte finish on the product casing is even and consistent with premium manufacturer standards.",
			IsPositive:  true,
		},
		BarcodeAnalysis: verification.AnalysisDetail{
			Title:       "Serial Number Confirmed",
			Description: "The serial number on the box matches the one on the device and is validated in the manufacturer's warranty database.",
			IsPositive:  true,
		},
		TextAnalysis: verification.AnalysisDetail{
			Title:       "Regulatory Markings Present",
			Description: "All regulatory markings (CE, FCC) are present, correctly formatted, and match the specified region.",
			IsPositive:  true,
		},
	},
	{
		IsGenuine:       true,
		ConfidenceScore: 95,
		ImageAnalysis: verification.AnalysisDetail{
			Title:       "Cosmetic Seal Intact",
			Description: "The product's tamper-evident safety seal is perfectly aligned and unbroken. The container's plastic has a high-quality feel, with no molding imperfections, and the color is consistent.",
			IsPositive:  true,
		},
		BarcodeAnalysis: verification.AnalysisDetail{
			Title:       "Batch Code Valid",
			Description: "The batch code is printed clearly and corresponds to a recent manufacturing date.",
			IsPositive:  true,
		},
		TextAnalysis: verification.AnalysisDetail{
			Title:       "Ingredient List Verified",
			Description: "The ingredient list is accurate, uses standard INCI nomenclature, and has no typos.",
			IsPositive:  true,
		},
	},
	{
		IsGenuine:       true,
		ConfidenceScore: 98,
		ImageAnalysis: verification.AnalysisDetail{
			Title:       "Premium Skincare Jar",
			Description: "The glass jar has a substantial weight and is free of bubbles or defects. The holographic security sticker on the box shows the brand's micro-printing when viewed under magnification.",
			IsPositive:  true,
		},
		BarcodeAnalysis: verification.AnalysisDetail{
			Title:       "Batch Code Laser-Etched",
			Description: "Batch code is laser-etched on the jar's bottom and matches the outer box. Verified in the brand's production database.",
			IsPositive:  true,
		},
		TextAnalysis: verification.AnalysisDetail{
			Title:       "Perfectly Aligned Text",
			Description: "All text uses the brand's proprietary font. The ingredient list is comprehensive and uses correct INCI names without error.",
			IsPositive:  true,
		},
	},
	{
		IsGenuine:       true,
		ConfidenceScore: 99,
		ImageAnalysis: verification.AnalysisDetail{
			Title:       "Flawless Headphone Build",
			Description: "The brushed aluminum finish is flawless, with a consistent grain direction. The logo is precisely debossed with clean edges. All included accessories are high-quality and correctly branded.",
			IsPositive:  true,
		},
		BarcodeAnalysis: verification.AnalysisDetail{
			Title:       "Serial Number Registered",
			Description: "Serial number from the box matches the one inside the earcup and was successfully registered for warranty on the official website.",
			IsPositive:  true,
		},
		TextAnalysis: verification.AnalysisDetail{
			Title:       "Professional Documentation",
			Description: "The quick start guide and warranty information are well-printed in multiple languages with no grammatical errors.",
			IsPositive:  true,
		},
	},
	{
		IsGenuine:       true,
		ConfidenceScore: 96,
		ImageAnalysis: verification.AnalysisDetail{
			Title:       "Official Jersey Stitching",
			Description: "Official league hologram is present and shows the correct 3D effect from multiple angles. Stitching on the team crest is dense and intricate, with over 10,000 stitches and no loose threads.",
			IsPositive:  true,
		},
		BarcodeAnalysis: verification.AnalysisDetail{
			Title:       "Hang Tag Barcode Correct",
			Description: "The barcode on the hang tag corresponds to the correct product, size, and season in the official merchandise catalog.",
			IsPositive:  true,
		},
		TextAnalysis: verification.AnalysisDetail{
			Title:       "Authentic Care Label",
			Description: "The care and material information label is sewn in neatly and contains the official manufacturer's information and logo.",
			IsPositive:  true,
		},
	},
}

var counterfeitPool = []verification.Result{
	{
		IsGenuine:       false,
		ConfidenceScore: 85,
		ImageAnalysis: verification.AnalysisDetail{
			Title:       "Visual Inconsistencies",
			Description: "The logo appears slightly blurred, suggesting a low-resolution scan of an original. Color saturation is dull and inconsistent, especially noticeable in the red tones.",
			IsPositive:  false,
		},
		BarcodeAnalysis: verification.AnalysisDetail{
			Title:       "Barcode Mismatch",
			Description: "Barcode is not registered in the official product database or corresponds to a different product.",
			IsPositive:  false,
		},
		TextAnalysis: verification.AnalysisDetail{
			Title:       "Font & Spelling Errors",
			Description: "The font used for the product description is incorrect, and a minor spelling error was detected in the ingredient list ('aqua' spelled as 'aqau').",
			IsPositive:  false,
		},
	},
	{
		IsGenuine:       false,
		ConfidenceScore: 92,
		ImageAnalysis: verification.AnalysisDetail{
			Title:       "Subtle Watch Flaws",
			Description: "Watch hands have a cheap, polished finish instead of the correct brushed steel. Luminosity of the hour markers is weak and fades quickly. Engraving on the back is shallow and lacks precision.",
			IsPositive:  false,
		},
		BarcodeAnalysis: verification.AnalysisDetail{
			Title:       "Serial Number Duplicated",
			Description: "The serial number is known to be used on multiple counterfeit items and is not unique.",
			IsPositive:  false,
		},
		TextAnalysis: verification.AnalysisDetail{
			Title:       "Incorrect Terminology",
			Description: "The user manual contains grammatical errors and uses non-standard terms for watch components.",
			IsPositive:  false,
		},
	},
	{
		IsGenuine:       false,
		ConfidenceScore: 78,
		ImageAnalysis: verification.AnalysisDetail{
			Title:       "Low-Quality Materials",
			Description: "The plastic feels brittle and has prominent, rough seam lines from a poor molding process. Paint application is sloppy, with colors bleeding over their designated areas and a strong chemical smell.",
			IsPositive:  false,
		},
		BarcodeAnalysis: verification.AnalysisDetail{
			Title:       "Barcode Invalid",
			Description: "The barcode does not follow the standard EAN-13 format and fails checksum validation.",
			IsPositive:  false,
		},
		TextAnalysis: verification.AnalysisDetail{
			Title:       "Missing Safety Warnings",
			Description: "Crucial safety warnings and age recommendations for the toy are missing from the packaging.",
			IsPositive:  false,
		},
	},
	{
		IsGenuine:       false,
		ConfidenceScore: 88,
		ImageAnalysis: verification.AnalysisDetail{
			Title:       "Perfume Bottle Defects",
			Description: "The bottle cap is lightweight plastic instead of weighted metal and fits loosely. Small air bubbles are visible within the glass. The atomizer nozzle sprays unevenly and leaks.",
			IsPositive:  false,
		},
		BarcodeAnalysis: verification.AnalysisDetail{
			Title:       "Barcode Linked to Recall",
			Description: "While the barcode is scannable, it corresponds to a product batch that was officially recalled by the manufacturer for quality issues.",
			IsPositive:  false,
		},
		TextAnalysis: verification.AnalysisDetail{
			Title:       "Ingredient List Inaccurate",
			Description: "The font on the ingredients list is slightly thinner than the official branding. A key chemical component is missing from the list.",
			IsPositive:  false,
		},
	},
	{
		IsGenuine:       false,
		ConfidenceScore: 95,
		ImageAnalysis: verification.AnalysisDetail{
			Title:       "Charger Build Quality",
			Description: "The plastic casing is a warmer shade of white and feels significantly lighter. The USB port is misaligned, requiring force to insert a cable. Electrical prongs are loose and show signs of poor casting.",
			IsPositive:  false,
		},
		BarcodeAnalysis: verification.AnalysisDetail{
			Title:       "Peelable Barcode Sticker",
			Description: "The barcode is a low-resolution sticker that can be peeled off, not printed directly on the casing as per official products.",
			IsPositive:  false,
		},
		TextAnalysis: verification.AnalysisDetail{
			Title:       "Incorrect Safety Marks",
			Description: "The UL safety certification logo is improperly designed, and the text 'Designed by Apple in California' uses a generic font.",
			IsPositive:  false,
		},
	},
	{
		IsGenuine:       false,
		ConfidenceScore: 82,
		ImageAnalysis: verification.AnalysisDetail{
			Title:       "Poor Handbag Craftsmanship",
			Description: "Stitching is uneven, widely spaced, and uses a thin, weak thread. The 'leather' has a synthetic, plastic-like sheen and odor. Hardware is lightweight, unbranded, and the zipper catches.",
			IsPositive:  false,
		},
		BarcodeAnalysis: verification.AnalysisDetail{
			Title:       "Suspicious QR Code",
			Description: "The QR code on the authenticity tag links to a non-official website instead of the brand's secure product verification page.",
			IsPositive:  false,
		},
		TextAnalysis: verification.AnalysisDetail{
			Title:       "Brand Name Misspelled",
			Description: "The brand name on the interior label is misspelled ('Prado' instead of 'Prada'). The 'Made in Italy' stamp is blurry.",
			IsPositive:  false,
		},
	},
}
