package attributes

import "github.com/airbusgeo/cdse-catalog/common"

// Attributes known by the catalogue, with the collections that declare them.
// Generated from the Attributes(<collection>) endpoint of each collection.
var table = []attribute{
	{name: "USGScollection", typ: common.AttributeString, collections: []string{"LANDSAT-8", "LANDSAT-9"}},
	{name: "acquisitionType", typ: common.AttributeString, collections: []string{"SENTINEL-5P"}},
	{name: "authority", typ: common.AttributeString, collections: []string{"SENTINEL-6", "SENTINEL-1-RTC", "ENVISAT", "LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "baselineCollection", typ: common.AttributeString, collections: []string{"SENTINEL-3", "SENTINEL-5P"}},
	{name: "brightCover", typ: common.AttributeDouble, collections: []string{"SENTINEL-3"}},
	{name: "card4lSpecification", typ: common.AttributeString, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "card4lSpecificationVersion", typ: common.AttributeString, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "closedSeaCover", typ: common.AttributeInteger, collections: []string{"SENTINEL-3"}},
	{name: "cloudCover", typ: common.AttributeDouble, title: "Cloud cover percentage (0-100)", collections: []string{"SENTINEL-2", "SENTINEL-3", "LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "cloudCoverLand", typ: common.AttributeDouble, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "coastalCover", typ: common.AttributeDouble, collections: []string{"SENTINEL-3"}},
	{name: "collectionCategory", typ: common.AttributeString, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "collectionName", typ: common.AttributeString, collections: []string{"LANDSAT-5", "LANDSAT-7"}},
	{name: "collectionNumber", typ: common.AttributeString, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "completionTimeFromAscendingNode", typ: common.AttributeDouble, collections: []string{"SENTINEL-1"}},
	{name: "continentalIceCover", typ: common.AttributeInteger, collections: []string{"SENTINEL-3"}},
	{name: "coordinates", typ: common.AttributeString, collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-3", "SENTINEL-5P"}},
	{name: "cycleNumber", typ: common.AttributeInteger, collections: []string{"SENTINEL-1", "SENTINEL-3", "ENVISAT"}},
	{name: "datastripId", typ: common.AttributeString, collections: []string{"SENTINEL-2"}},
	{name: "datatakeID", typ: common.AttributeInteger, collections: []string{"SENTINEL-1"}},
	{name: "doi", typ: common.AttributeString, collections: []string{"SENTINEL-5P"}},
	{name: "freshInlandWaterCover", typ: common.AttributeDouble, collections: []string{"SENTINEL-3"}},
	{name: "geometricRmse", typ: common.AttributeDouble, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "geometricXBias", typ: common.AttributeDouble, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "geometricXStddev", typ: common.AttributeDouble, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "geometricYBias", typ: common.AttributeDouble, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "geometricYStddev", typ: common.AttributeDouble, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "granuleIdentifier", typ: common.AttributeString, collections: []string{"SENTINEL-2"}},
	{name: "identifier", typ: common.AttributeString, collections: []string{"SENTINEL-5P"}},
	{name: "illuminationZenithAngle", typ: common.AttributeDouble, collections: []string{"SENTINEL-2"}},
	{name: "instrumentConfigurationID", typ: common.AttributeInteger, collections: []string{"SENTINEL-1"}},
	{name: "instrumentShortName", typ: common.AttributeString, collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-3", "SENTINEL-5P", "SENTINEL-6", "SENTINEL-1-RTC", "ENVISAT", "LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "landCover", typ: common.AttributeDouble, collections: []string{"SENTINEL-3"}},
	{name: "lastOrbitDirection", typ: common.AttributeString, collections: []string{"SENTINEL-3"}},
	{name: "lastOrbitNumber", typ: common.AttributeInteger, collections: []string{"SENTINEL-2", "SENTINEL-3"}},
	{name: "lastRelativeOrbitNumber", typ: common.AttributeInteger, collections: []string{"SENTINEL-3"}},
	{name: "numberOfBands", typ: common.AttributeInteger, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "offNadir", typ: common.AttributeDouble, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "openOceanCover", typ: common.AttributeInteger, collections: []string{"SENTINEL-3"}},
	{name: "operationalMode", typ: common.AttributeString, collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-3", "SENTINEL-6", "SENTINEL-1-RTC", "LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "orbitDirection", typ: common.AttributeString, title: "Orbit direction (ASCENDING or DESCENDING)", collections: []string{"SENTINEL-1", "SENTINEL-3", "SENTINEL-1-RTC"}},
	{name: "orbitNumber", typ: common.AttributeInteger, title: "Absolute orbit number", collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-3", "SENTINEL-5P", "SENTINEL-6", "SENTINEL-1-RTC", "ENVISAT", "LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "origin", typ: common.AttributeString, collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-6"}},
	{name: "parentIdentifier", typ: common.AttributeString, collections: []string{"SENTINEL-5P"}},
	{name: "pathNumber", typ: common.AttributeInteger, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "phaseNumber", typ: common.AttributeInteger, collections: []string{"ENVISAT"}},
	{name: "platformSerialIdentifier", typ: common.AttributeString, collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-3", "SENTINEL-5P", "SENTINEL-6", "SENTINEL-1-RTC"}},
	{name: "platformShortName", typ: common.AttributeString, collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-3", "SENTINEL-5P", "SENTINEL-6", "SENTINEL-1-RTC", "ENVISAT", "LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "polarisationChannels", typ: common.AttributeString, collections: []string{"SENTINEL-1", "SENTINEL-1-RTC"}},
	{name: "processingBaseline", typ: common.AttributeString, collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-3", "SENTINEL-5P", "SENTINEL-6"}},
	{name: "processingCenter", typ: common.AttributeString, collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-3", "SENTINEL-5P", "SENTINEL-6"}},
	{name: "processingDate", typ: common.AttributeDateTimeOffset, collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-3", "SENTINEL-5P", "SENTINEL-6"}},
	{name: "processingLevel", typ: common.AttributeString, title: "Processing level", collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-3", "SENTINEL-5P", "SENTINEL-6", "SENTINEL-1-RTC", "ENVISAT", "LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "processingMode", typ: common.AttributeString, collections: []string{"SENTINEL-5P"}},
	{name: "processorName", typ: common.AttributeString, collections: []string{"SENTINEL-1", "SENTINEL-3", "SENTINEL-5P"}},
	{name: "processorVersion", typ: common.AttributeString, collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-3", "SENTINEL-5P", "SENTINEL-6"}},
	{name: "productClass", typ: common.AttributeString, collections: []string{"SENTINEL-1", "SENTINEL-5P"}},
	{name: "productComposition", typ: common.AttributeString, collections: []string{"SENTINEL-1"}},
	{name: "productConsolidation", typ: common.AttributeString, collections: []string{"SENTINEL-1"}},
	{name: "productGeneration", typ: common.AttributeDateTimeOffset, collections: []string{"SENTINEL-1"}},
	{name: "productGroupId", typ: common.AttributeString, collections: []string{"SENTINEL-2"}},
	{name: "productType", typ: common.AttributeString, title: "Product type", collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-3", "SENTINEL-5P", "SENTINEL-6", "SENTINEL-1-RTC", "ENVISAT", "LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "proj:epsg", typ: common.AttributeInteger, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "projShape", typ: common.AttributeString, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "projTransform", typ: common.AttributeString, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "qualityInfo", typ: common.AttributeInteger, collections: []string{"SENTINEL-2"}},
	{name: "qualityStatus", typ: common.AttributeString, collections: []string{"SENTINEL-2", "SENTINEL-5P"}},
	{name: "relativeOrbitNumber", typ: common.AttributeInteger, title: "Relative orbit number", collections: []string{"SENTINEL-1", "SENTINEL-2", "SENTINEL-3", "SENTINEL-6", "SENTINEL-1-RTC"}},
	{name: "rowNumber", typ: common.AttributeInteger, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "salineWaterCover", typ: common.AttributeDouble, collections: []string{"SENTINEL-3"}},
	{name: "sceneId", typ: common.AttributeString, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "segmentStartTime", typ: common.AttributeDateTimeOffset, collections: []string{"SENTINEL-1"}},
	{name: "sliceNumber", typ: common.AttributeInteger, collections: []string{"SENTINEL-1"}},
	{name: "sliceProductFlag", typ: common.AttributeBoolean, collections: []string{"SENTINEL-1"}},
	{name: "snowOrIceCover", typ: common.AttributeDouble, collections: []string{"SENTINEL-3"}},
	{name: "source", typ: common.AttributeString, collections: []string{"SENTINEL-6"}},
	{name: "sourceProduct", typ: common.AttributeString, collections: []string{"SENTINEL-2"}},
	{name: "sourceProductOriginDate", typ: common.AttributeString, collections: []string{"SENTINEL-2"}},
	{name: "spatialResolution", typ: common.AttributeInteger, collections: []string{"SENTINEL-6", "SENTINEL-1-RTC", "ENVISAT", "LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "startTimeFromAscendingNode", typ: common.AttributeDouble, collections: []string{"SENTINEL-1"}},
	{name: "sunAzimuthAngle", typ: common.AttributeDouble, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "sunElevationAngle", typ: common.AttributeDouble, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "swathIdentifier", typ: common.AttributeString, collections: []string{"SENTINEL-1"}},
	{name: "tidalRegionCover", typ: common.AttributeDouble, collections: []string{"SENTINEL-3"}},
	{name: "tileId", typ: common.AttributeString, collections: []string{"SENTINEL-2"}},
	{name: "timeliness", typ: common.AttributeString, collections: []string{"SENTINEL-1", "SENTINEL-3", "SENTINEL-6"}},
	{name: "totalSlices", typ: common.AttributeInteger, collections: []string{"SENTINEL-1"}},
	{name: "view:sun_azimuth", typ: common.AttributeDouble, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "view:sun_elevation", typ: common.AttributeDouble, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "wrsPath", typ: common.AttributeString, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "wrsRow", typ: common.AttributeString, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
	{name: "wrsType", typ: common.AttributeString, collections: []string{"LANDSAT-5", "LANDSAT-7", "LANDSAT-8", "LANDSAT-9"}},
}
